package service

import (
	"context"

	"shop-admin-api/internal/attachment"
	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/internal/ws"
	"shop-admin-api/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SliderService interface {
	List(ctx context.Context, page int) (repository.Paginated[model.Slider], error)
	Get(ctx context.Context, id string) (*model.Slider, error)
	Create(ctx context.Context, req *CreateSliderRequest) (*model.Slider, error)
	Update(ctx context.Context, id string, req *UpdateSliderRequest) (*model.Slider, error)
	Delete(ctx context.Context, id string) (*model.Slider, error)
}

type CreateSliderRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=255"`
	Body        string `json:"body" form:"body" validate:"required"`
	LinkTitle   string `json:"link_title" form:"link_title" validate:"required,max=255"`
	LinkAddress string `json:"link_address" form:"link_address" validate:"required,max=255"`

	Image *attachment.Upload `json:"-" form:"-" validate:"-"`
}

type UpdateSliderRequest struct {
	Title       string `json:"title" form:"title" validate:"omitempty,max=255"`
	Body        string `json:"body" form:"body"`
	LinkTitle   string `json:"link_title" form:"link_title" validate:"omitempty,max=255"`
	LinkAddress string `json:"link_address" form:"link_address" validate:"omitempty,max=255"`

	Image *attachment.Upload `json:"-" form:"-" validate:"-"`
}

type sliderService struct {
	sliders repository.SliderRepository
	files   *attachment.Manager
	hub     *ws.Hub
	maxKB   int
}

func NewSliderService(sliders repository.SliderRepository, files *attachment.Manager, hub *ws.Hub, maxUploadKB int) SliderService {
	return &sliderService{sliders: sliders, files: files, hub: hub, maxKB: maxUploadKB}
}

func (s *sliderService) List(ctx context.Context, page int) (repository.Paginated[model.Slider], error) {
	res, err := s.sliders.List(ctx, repository.NewPage(page))
	if err != nil {
		return res, apperror.Persistence(err)
	}
	return res, nil
}

func (s *sliderService) Get(ctx context.Context, rawID string) (*model.Slider, error) {
	id, err := parseID(rawID, "Slider")
	if err != nil {
		return nil, err
	}
	slider, err := s.sliders.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Slider")
	}
	return slider, nil
}

func (s *sliderService) Create(ctx context.Context, req *CreateSliderRequest) (*model.Slider, error) {
	errs := check(req)
	if req.Image == nil {
		errs.Add("image", "The image field is required.")
	} else {
		checkImage(errs, "image", req.Image, s.maxKB)
	}
	if err := unique(errs, "title", req.Title, func() (bool, error) {
		return s.sliders.ExistsByTitle(ctx, req.Title, uuid.Nil)
	}); err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	slider := &model.Slider{
		Title:       req.Title,
		Body:        req.Body,
		LinkTitle:   req.LinkTitle,
		LinkAddress: req.LinkAddress,
	}
	slider.CreatedBy = actor(ctx)
	slider.UpdatedBy = actor(ctx)

	_, err := s.files.Create(ctx, req.Image, nil, func(tx *gorm.DB, files attachment.Files) error {
		slider.Image = files.Primary
		return s.sliders.WithTx(tx).Create(ctx, slider)
	})
	if err != nil {
		return nil, err
	}

	s.hub.Publish("slider.created", map[string]interface{}{"id": slider.ID, "title": slider.Title})
	return slider, nil
}

func (s *sliderService) Update(ctx context.Context, rawID string, req *UpdateSliderRequest) (*model.Slider, error) {
	slider, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}

	errs := check(req)
	if req.Image != nil {
		checkImage(errs, "image", req.Image, s.maxKB)
	}
	if err := unique(errs, "title", req.Title, func() (bool, error) {
		return s.sliders.ExistsByTitle(ctx, req.Title, slider.ID)
	}); err != nil {
		return nil, err
	}
	if err := failed(errs); err != nil {
		return nil, err
	}

	if req.Title != "" {
		slider.Title = req.Title
	}
	if req.Body != "" {
		slider.Body = req.Body
	}
	if req.LinkTitle != "" {
		slider.LinkTitle = req.LinkTitle
	}
	if req.LinkAddress != "" {
		slider.LinkAddress = req.LinkAddress
	}
	slider.UpdatedBy = actor(ctx)

	current := attachment.Files{Primary: slider.Image}
	_, err = s.files.Update(ctx, current, req.Image, nil, func(tx *gorm.DB, written attachment.Files) error {
		if written.Primary != "" {
			slider.Image = written.Primary
		}
		return s.sliders.WithTx(tx).Update(ctx, slider)
	})
	if err != nil {
		return nil, err
	}

	s.hub.Publish("slider.updated", map[string]interface{}{"id": slider.ID, "title": slider.Title})
	return slider, nil
}

func (s *sliderService) Delete(ctx context.Context, rawID string) (*model.Slider, error) {
	slider, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}

	err = s.files.Delete(ctx, attachment.Files{Primary: slider.Image}, func(tx *gorm.DB) error {
		return s.sliders.WithTx(tx).Delete(ctx, slider.ID)
	})
	if err != nil {
		return nil, err
	}

	s.hub.Publish("slider.deleted", map[string]interface{}{"id": slider.ID})
	return slider, nil
}
