package catalogservice

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pagemint/pagemint/internal/domain"
	"github.com/pagemint/pagemint/internal/storage"
	"github.com/pagemint/pagemint/pkg/publicurl"
)

type InstanceRepo interface {
	FindByID(ctx context.Context, id int) (*domain.ToolInstance, error)
	FindByClientAndTool(ctx context.Context, clientID int, toolID string) ([]domain.ToolInstance, error)
	Delete(ctx context.Context, id int) error
}

type ClientRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Client, error)
}

type Storage interface {
	Remove(ctx context.Context, namespace, path string) error
}

type Service struct {
	instanceRepo InstanceRepo
	clientRepo   ClientRepo
	storage      Storage
	host         string
}

func New(instanceRepo InstanceRepo, clientRepo ClientRepo, st Storage, host string) *Service {
	return &Service{
		instanceRepo: instanceRepo,
		clientRepo:   clientRepo,
		storage:      st,
		host:         host,
	}
}

// List returns the client's instances of one tool, newest first. The
// stored address is parsed back to its (username, toolID, usageID)
// triple and re-rendered in friendly form, so rows written as raw
// storage URLs by older deployments and rows under the legacy
// image-to-site alias come out identical to freshly published ones.
func (s *Service) List(ctx context.Context, clientID int, toolID string) ([]domain.ToolInstance, error) {
	instances, err := s.instanceRepo.FindByClientAndTool(ctx, clientID, toolID)
	if err != nil {
		zap.L().Error("failed to list instances", zap.Error(err))
		return nil, err
	}

	for i := range instances {
		if instances[i].SiteURL == "" {
			continue
		}
		username, tool, usage, ok := publicurl.Parse(instances[i].SiteURL)
		if !ok {
			zap.L().Warn("unparseable site url left as stored",
				zap.Int("instanceID", instances[i].ID),
				zap.String("siteURL", instances[i].SiteURL),
			)
			continue
		}
		instances[i].SiteURL = publicurl.Friendly(s.host, username, tool, usage)
	}
	return instances, nil
}

// Get returns one owned instance with its address in friendly form.
// Foreign instances surface as not found.
func (s *Service) Get(ctx context.Context, clientID, instanceID int) (*domain.ToolInstance, error) {
	instance, err := s.instanceRepo.FindByID(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	if instance == nil || instance.ClientID != clientID {
		return nil, domain.ErrNotFound
	}
	if instance.SiteURL != "" {
		if username, tool, usage, ok := publicurl.Parse(instance.SiteURL); ok {
			instance.SiteURL = publicurl.Friendly(s.host, username, tool, usage)
		}
	}
	return instance, nil
}

// Delete removes the instance row, then issues best-effort deletion of
// its storage prefix in both namespaces. The row delete is the source
// of truth: storage failures are logged and the delete still succeeds.
func (s *Service) Delete(ctx context.Context, clientID, instanceID int) error {
	instance, err := s.instanceRepo.FindByID(ctx, instanceID)
	if err != nil {
		return err
	}
	if instance == nil || instance.ClientID != clientID {
		return domain.ErrNotFound
	}

	if err := s.instanceRepo.Delete(ctx, instanceID); err != nil {
		return err
	}

	s.cleanupStorage(ctx, instance)
	return nil
}

func (s *Service) cleanupStorage(ctx context.Context, instance *domain.ToolInstance) {
	client, err := s.clientRepo.FindByID(ctx, instance.ClientID)
	if err != nil || client == nil {
		zap.L().Warn("skipping storage cleanup, owner lookup failed",
			zap.Int("instanceID", instance.ID),
			zap.Error(err),
		)
		return
	}

	prefix := publicurl.BuildStoragePath(client.DisplayName, instance.ToolID, instance.UsageID)

	g, gctx := errgroup.WithContext(ctx)
	for _, ns := range []string{storage.NamespaceImages, storage.NamespaceSites} {
		ns := ns
		g.Go(func() error {
			if err := s.storage.Remove(gctx, ns, prefix); err != nil {
				zap.L().Warn("storage cleanup failed",
					zap.String("namespace", ns),
					zap.String("prefix", prefix),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	_ = g.Wait()
}
