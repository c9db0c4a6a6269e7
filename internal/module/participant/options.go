package participant

import (
	"context"
	"time"

	"participant-registration/config"
	"participant-registration/internal/global/cache"
	"participant-registration/internal/global/database"
	"participant-registration/internal/model"

	"golang.org/x/sync/errgroup"
)

const (
	highSchoolsCacheKey = "participant:options:high_schools"
	topicsCacheKey      = "participant:options:topics"
)

// options 表单下拉列表
type options struct {
	HighSchools []model.HighSchool
	Topics      []model.Topic
}

func optionsTTL() time.Duration {
	return time.Duration(config.Get().Cache.OptionsTTL) * time.Second
}

func listHighSchools(ctx context.Context) ([]model.HighSchool, error) {
	var list []model.HighSchool
	err := database.DB.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

func listTopics(ctx context.Context) ([]model.Topic, error) {
	var list []model.Topic
	err := database.DB.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

// loadOptions 并发读取高中和课题列表（配置了 Redis 时走缓存）
func loadOptions(ctx context.Context, g *errgroup.Group, o *options) {
	store := cache.Default()
	g.Go(func() error {
		list, err := cache.Remember(ctx, store, highSchoolsCacheKey, optionsTTL(), listHighSchools)
		o.HighSchools = list
		return err
	})
	g.Go(func() error {
		list, err := cache.Remember(ctx, store, topicsCacheKey, optionsTTL(), listTopics)
		o.Topics = list
		return err
	})
}

func fetchOptions(ctx context.Context) (*options, error) {
	var o options
	g, ctx := errgroup.WithContext(ctx)
	loadOptions(ctx, g, &o)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &o, nil
}
