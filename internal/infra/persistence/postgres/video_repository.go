package postgres

import (
	"context"
	"strings"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultVideoPage  = 1
	defaultVideoLimit = 10
	maxVideoLimit     = 100
)

// videoRepository implements the repository.VideoRepository interface.
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{
		db: db,
	}
}

// Create persists a new video.
func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoM := fromVideoDomain(video)

	if err := repo.db.WithContext(ctx).Create(videoM).Error; err != nil {
		return errors.Wrap(err, "failed to create video")
	}

	// Update the entity with generated values
	video.ID = videoM.ID
	video.CreatedAt = videoM.CreatedAt
	video.UpdatedAt = videoM.UpdatedAt

	return nil
}

// FindByID retrieves a video by its ID, regardless of publish state.
func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var videoM model.VideoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&videoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video by ID")
	}

	return toVideoDomain(&videoM), nil
}

// FindByIDWithOwner retrieves a video with its owning channel joined.
func (repo *videoRepository) FindByIDWithOwner(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var videoM model.VideoModel

	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&videoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video with owner")
	}

	return toVideoDomain(&videoM), nil
}

// Update modifies an existing video's mutable fields.
func (repo *videoRepository) Update(ctx context.Context, video *entity.Video) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", video.ID).
		Updates(map[string]any{
			"title":        video.Title,
			"description":  video.Description,
			"thumbnail":    video.Thumbnail,
			"is_published": video.IsPublished,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update video")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// Delete removes a video row.
func (repo *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VideoModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete video")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// List returns published videos matching the query plus the total count.
func (repo *videoRepository) List(ctx context.Context, query entity.VideoListQuery) ([]*entity.Video, int64, error) {
	page := query.Page
	if page < 1 {
		page = defaultVideoPage
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultVideoLimit
	}
	if limit > maxVideoLimit {
		limit = maxVideoLimit
	}

	base := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("is_published = ?", true)

	if search := strings.TrimSpace(query.Search); search != "" {
		base = base.Where("title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count videos")
	}

	var videoModels []*model.VideoModel
	if err := base.
		Preload("Owner").
		Order(sortClause(query.SortBy, query.SortType)).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&videoModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list videos")
	}

	videos := make([]*entity.Video, 0, len(videoModels))
	for _, videoM := range videoModels {
		videos = append(videos, toVideoDomain(videoM))
	}

	return videos, total, nil
}

// sortClause whitelists sortable columns; anything else falls back to newest first.
func sortClause(sortBy, sortType string) string {
	column := "created_at"
	switch sortBy {
	case "title", "views", "duration", "created_at":
		column = sortBy
	}

	direction := "DESC"
	if strings.EqualFold(sortType, "asc") {
		direction = "ASC"
	}

	return column + " " + direction
}

// ListByOwner returns all of a channel's videos, drafts included.
func (repo *videoRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Video, error) {
	var videoModels []*model.VideoModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&videoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list videos by owner")
	}

	videos := make([]*entity.Video, 0, len(videoModels))
	for _, videoM := range videoModels {
		videos = append(videos, toVideoDomain(videoM))
	}

	return videos, nil
}

// IncrementViews bumps the view counter with a single statement.
func (repo *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment views")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// CountByOwner returns the number of videos a channel has.
func (repo *videoRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count videos by owner")
	}

	return count, nil
}

// SumViewsByOwner returns the total views across a channel's videos.
func (repo *videoRepository) SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum views by owner")
	}

	return total, nil
}

// --- Mapper Functions ---

// toVideoDomain converts a GORM VideoModel to a domain Video entity.
func toVideoDomain(data *model.VideoModel) *entity.Video {
	if data == nil {
		return nil
	}

	return &entity.Video{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		VideoFile:   data.VideoFile,
		Thumbnail:   data.Thumbnail,
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Owner:       toUserDomain(data.Owner),
	}
}

// fromVideoDomain converts a domain Video entity to a GORM VideoModel.
func fromVideoDomain(data *entity.Video) *model.VideoModel {
	if data == nil {
		return nil
	}

	return &model.VideoModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		VideoFile:   data.VideoFile,
		Thumbnail:   data.Thumbnail,
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
