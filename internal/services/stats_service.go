package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"Stashed/internal/models"
	"Stashed/internal/repository"
)

// recentFeedSize bounds the recently-added feed.
const recentFeedSize = 5

// Statistics is the dashboard aggregate. Everything is computed live from
// the owner's rows; there are no persisted counters to drift.
type Statistics struct {
	TotalItems      int64        `json:"total_items"`
	TotalContainers int64        `json:"total_containers"`
	TotalCategories int64        `json:"total_categories"`
	ItemsCheckedOut int64        `json:"items_checked_out"`
	RecentItems     []RecentItem `json:"recent_items"`
}

// RecentItem is a feed entry: an item annotated with its category and
// container names and the slot-1 thumbnail, when one exists.
type RecentItem struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	CategoryName  string    `json:"category_name"`
	ContainerName string    `json:"container_name"`
	IsIn          bool      `json:"is_in"`
	Thumbnail     *string   `json:"thumbnail"`
	CreatedAt     time.Time `json:"created_at"`
}

type StatsService interface {
	GetStatistics(ctx context.Context, ownerID uint) (*Statistics, error)
}

type statsServiceImpl struct {
	itemRepo      repository.ItemRepository
	containerRepo repository.ContainerRepository
	categoryRepo  repository.CategoryRepository
	imageRepo     repository.ImageRepository
}

func NewStatsService(
	itemRepo repository.ItemRepository,
	containerRepo repository.ContainerRepository,
	categoryRepo repository.CategoryRepository,
	imageRepo repository.ImageRepository,
) StatsService {
	return &statsServiceImpl{
		itemRepo:      itemRepo,
		containerRepo: containerRepo,
		categoryRepo:  categoryRepo,
		imageRepo:     imageRepo,
	}
}

// GetStatistics runs the four counts and the recent feed concurrently; no
// read depends on another, and all are scoped to the owner.
func (s *statsServiceImpl) GetStatistics(ctx context.Context, ownerID uint) (*Statistics, error) {
	stats := &Statistics{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		count, err := s.itemRepo.Count(groupCtx, ownerID)
		stats.TotalItems = count
		return err
	})
	group.Go(func() error {
		count, err := s.containerRepo.Count(groupCtx, ownerID)
		stats.TotalContainers = count
		return err
	})
	group.Go(func() error {
		count, err := s.categoryRepo.Count(groupCtx, ownerID)
		stats.TotalCategories = count
		return err
	})
	group.Go(func() error {
		count, err := s.itemRepo.CountCheckedOut(groupCtx, ownerID)
		stats.ItemsCheckedOut = count
		return err
	})
	group.Go(func() error {
		recent, err := s.recentItems(groupCtx, ownerID)
		stats.RecentItems = recent
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// recentItems builds the feed with three targeted lookups merged in memory
// instead of a persisted denormalization.
func (s *statsServiceImpl) recentItems(ctx context.Context, ownerID uint) ([]RecentItem, error) {
	items, err := s.itemRepo.Recent(ctx, ownerID, recentFeedSize)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]uint, 0, len(items))
	categoryIDs := make([]uint, 0, len(items))
	containerIDs := make([]uint, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
		categoryIDs = append(categoryIDs, item.CategoryID)
		containerIDs = append(containerIDs, item.ContainerID)
	}

	categoryNames, err := s.categoryRepo.NamesByID(ctx, ownerID, categoryIDs)
	if err != nil {
		return nil, err
	}
	containerNames, err := s.containerRepo.NamesByID(ctx, ownerID, containerIDs)
	if err != nil {
		return nil, err
	}
	thumbnails, err := s.imageRepo.ThumbnailsFor(ctx, ownerID, models.KindItem, itemIDs)
	if err != nil {
		return nil, err
	}

	feed := make([]RecentItem, 0, len(items))
	for _, item := range items {
		entry := RecentItem{
			ID:            item.ID,
			Name:          item.Name,
			CategoryName:  categoryNames[item.CategoryID],
			ContainerName: containerNames[item.ContainerID],
			IsIn:          item.IsIn,
			CreatedAt:     item.CreatedAt,
		}
		if path, ok := thumbnails[item.ID]; ok {
			thumbnail := path
			entry.Thumbnail = &thumbnail
		}
		feed = append(feed, entry)
	}
	return feed, nil
}
