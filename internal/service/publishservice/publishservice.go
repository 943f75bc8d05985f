package publishservice

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/pagemint/pagemint/internal/domain"
	"github.com/pagemint/pagemint/internal/storage"
	"github.com/pagemint/pagemint/pkg/publicurl"
)

// Storage is the object-store collaborator. PublicURL is pure and
// used to re-derive asset addresses when a publish is resumed.
type Storage interface {
	Upload(ctx context.Context, namespace, path string, data []byte, contentType string) (string, error)
	PublicURL(namespace, path string) string
}

type InstanceRepo interface {
	UpdateStatus(ctx context.Context, id int, status string) error
	SetSiteURL(ctx context.Context, id int, siteURL string) error
}

type ClientRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Client, error)
}

// Stage-tagged failures. Handlers map both to a gateway error; the
// tag tells the caller which uploads, if any, are already live.
var (
	ErrImageUpload = errors.New("image upload failed")
	ErrPageUpload  = errors.New("page upload failed")
)

type Service struct {
	storage      Storage
	instanceRepo InstanceRepo
	clientRepo   ClientRepo
	host         string
}

func New(st Storage, instanceRepo InstanceRepo, clientRepo ClientRepo, host string) *Service {
	return &Service{
		storage:      st,
		instanceRepo: instanceRepo,
		clientRepo:   clientRepo,
		host:         host,
	}
}

// Publish pushes the generated content live and attaches the public
// address to the instance. The three stages (image assets, rendered
// page, address attachment) advance the instance status as each one
// completes, so a retried call resumes from the first incomplete
// stage instead of re-uploading what is already live. There is no
// rollback: a failure part way through leaves earlier uploads in
// place and the instance status records how far publishing got.
func (s *Service) Publish(ctx context.Context, instance *domain.ToolInstance, content *domain.Content) (string, error) {
	if instance.Status == domain.StatusFinalized {
		return instance.SiteURL, nil
	}

	client, err := s.clientRepo.FindByID(ctx, instance.ClientID)
	if err != nil {
		return "", err
	}
	if client == nil {
		return "", domain.ErrNotFound
	}

	basePath := publicurl.BuildStoragePath(client.DisplayName, instance.ToolID, instance.UsageID)

	imageURLs, err := s.publishImages(ctx, instance, basePath, content.Images)
	if err != nil {
		return "", err
	}

	if err := s.publishPage(ctx, instance, basePath, content, imageURLs); err != nil {
		return "", err
	}

	siteURL := publicurl.Friendly(s.host, client.DisplayName, instance.ToolID, instance.UsageID)
	if err := s.instanceRepo.SetSiteURL(ctx, instance.ID, siteURL); err != nil {
		if errors.Is(err, domain.ErrAlreadyFinalized) {
			// The address is deterministic, so a concurrent finalize
			// attached the same value.
			return siteURL, nil
		}
		return "", err
	}
	instance.Status = domain.StatusFinalized
	instance.SiteURL = siteURL
	return siteURL, nil
}

func (s *Service) publishImages(ctx context.Context, instance *domain.ToolInstance, basePath string, images []domain.ImageAsset) ([]string, error) {
	urls := make([]string, 0, len(images))

	if instance.Status != domain.StatusAllocated {
		// Already uploaded on a previous attempt; re-derive the
		// public addresses without touching storage.
		for i, img := range images {
			urls = append(urls, s.storage.PublicURL(storage.NamespaceImages, assetPath(basePath, i, img.Name)))
		}
		return urls, nil
	}

	for i, img := range images {
		url, err := s.storage.Upload(ctx, storage.NamespaceImages, assetPath(basePath, i, img.Name), img.Data, img.ContentType)
		if err != nil {
			zap.L().Error("image upload failed",
				zap.Int("instanceID", instance.ID),
				zap.Int("index", i),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: %v", ErrImageUpload, err)
		}
		urls = append(urls, url)
	}

	if err := s.instanceRepo.UpdateStatus(ctx, instance.ID, domain.StatusImagesUploaded); err != nil {
		return nil, err
	}
	instance.Status = domain.StatusImagesUploaded
	return urls, nil
}

func (s *Service) publishPage(ctx context.Context, instance *domain.ToolInstance, basePath string, content *domain.Content, imageURLs []string) error {
	if instance.Status != domain.StatusImagesUploaded {
		return nil
	}

	page, err := renderPage(content, imageURLs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageUpload, err)
	}

	if _, err := s.storage.Upload(ctx, storage.NamespaceSites, basePath+"/index.html", page, "text/html; charset=utf-8"); err != nil {
		zap.L().Error("page upload failed", zap.Int("instanceID", instance.ID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPageUpload, err)
	}

	if err := s.instanceRepo.UpdateStatus(ctx, instance.ID, domain.StatusPagePublished); err != nil {
		return err
	}
	instance.Status = domain.StatusPagePublished
	return nil
}

// assetPath names image assets by position under the instance path,
// keeping the upload's extension.
func assetPath(basePath string, index int, name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("%s/image-%d%s", basePath, index+1, ext)
}
