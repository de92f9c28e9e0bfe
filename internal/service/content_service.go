package service

import (
	"context"

	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/pkg/apperror"
)

type ContentService interface {
	AboutUs(ctx context.Context) (*model.AboutUs, error)
	UpdateAboutUs(ctx context.Context, req *AboutUsRequest) (*model.AboutUs, error)
	Footer(ctx context.Context) (*model.Footer, error)
	UpdateFooter(ctx context.Context, req *FooterRequest) (*model.Footer, error)

	ListMessages(ctx context.Context, page int) (repository.Paginated[model.ContactUs], error)
	GetMessage(ctx context.Context, id string) (*model.ContactUs, error)
	DeleteMessage(ctx context.Context, id string) (*model.ContactUs, error)
}

type AboutUsRequest struct {
	Title       string `json:"title" form:"title" validate:"omitempty,max=255"`
	Body        string `json:"body" form:"body"`
	LinkTitle   string `json:"link_title" form:"link_title" validate:"omitempty,max=255"`
	LinkAddress string `json:"link_address" form:"link_address" validate:"omitempty,max=255"`
}

type FooterRequest struct {
	ContactAddress string `json:"contact_address" form:"contact_address" validate:"omitempty,max=255"`
	ContactPhone   string `json:"contact_phone" form:"contact_phone" validate:"omitempty,ir_mobile"`
	ContactEmail   string `json:"contact_email" form:"contact_email" validate:"omitempty,email"`
	Title          string `json:"title" form:"title" validate:"omitempty,max=255"`
	Body           string `json:"body" form:"body"`
	WorkDays       string `json:"work_days" form:"work_days" validate:"omitempty,max=255"`
	WorkHourFrom   string `json:"work_hour_from" form:"work_hour_from" validate:"omitempty,max=20"`
	WorkHourTo     string `json:"work_hour_to" form:"work_hour_to" validate:"omitempty,max=20"`
	TelegramLink   string `json:"telegram_link" form:"telegram_link" validate:"omitempty,url"`
	WhatsappLink   string `json:"whatsapp_link" form:"whatsapp_link" validate:"omitempty,url"`
	InstagramLink  string `json:"instagram_link" form:"instagram_link" validate:"omitempty,url"`
	YoutubeLink    string `json:"youtube_link" form:"youtube_link" validate:"omitempty,url"`
	Copyright      string `json:"copyright" form:"copyright" validate:"omitempty,max=255"`
}

type contentService struct {
	content  repository.ContentRepository
	messages repository.ContactRepository
}

func NewContentService(content repository.ContentRepository, messages repository.ContactRepository) ContentService {
	return &contentService{content: content, messages: messages}
}

func (s *contentService) AboutUs(ctx context.Context) (*model.AboutUs, error) {
	about, err := s.content.AboutUs(ctx)
	if err != nil {
		return nil, lookupError(err, "About us")
	}
	return about, nil
}

func (s *contentService) UpdateAboutUs(ctx context.Context, req *AboutUsRequest) (*model.AboutUs, error) {
	if err := failed(check(req)); err != nil {
		return nil, err
	}
	about, err := s.AboutUs(ctx)
	if err != nil {
		return nil, err
	}
	fill(&about.Title, req.Title)
	fill(&about.Body, req.Body)
	fill(&about.LinkTitle, req.LinkTitle)
	fill(&about.LinkAddress, req.LinkAddress)
	about.UpdatedBy = actor(ctx)
	if err := s.content.SaveAboutUs(ctx, about); err != nil {
		return nil, apperror.Persistence(err)
	}
	return about, nil
}

func (s *contentService) Footer(ctx context.Context) (*model.Footer, error) {
	footer, err := s.content.Footer(ctx)
	if err != nil {
		return nil, lookupError(err, "Footer")
	}
	return footer, nil
}

func (s *contentService) UpdateFooter(ctx context.Context, req *FooterRequest) (*model.Footer, error) {
	if err := failed(check(req)); err != nil {
		return nil, err
	}
	footer, err := s.Footer(ctx)
	if err != nil {
		return nil, err
	}
	fill(&footer.ContactAddress, req.ContactAddress)
	fill(&footer.ContactPhone, req.ContactPhone)
	fill(&footer.ContactEmail, req.ContactEmail)
	fill(&footer.Title, req.Title)
	fill(&footer.Body, req.Body)
	fill(&footer.WorkDays, req.WorkDays)
	fill(&footer.WorkHourFrom, req.WorkHourFrom)
	fill(&footer.WorkHourTo, req.WorkHourTo)
	fill(&footer.TelegramLink, req.TelegramLink)
	fill(&footer.WhatsappLink, req.WhatsappLink)
	fill(&footer.InstagramLink, req.InstagramLink)
	fill(&footer.YoutubeLink, req.YoutubeLink)
	fill(&footer.Copyright, req.Copyright)
	footer.UpdatedBy = actor(ctx)
	if err := s.content.SaveFooter(ctx, footer); err != nil {
		return nil, apperror.Persistence(err)
	}
	return footer, nil
}

func (s *contentService) ListMessages(ctx context.Context, page int) (repository.Paginated[model.ContactUs], error) {
	res, err := s.messages.List(ctx, repository.NewPage(page))
	if err != nil {
		return res, apperror.Persistence(err)
	}
	return res, nil
}

func (s *contentService) GetMessage(ctx context.Context, rawID string) (*model.ContactUs, error) {
	id, err := parseID(rawID, "Message")
	if err != nil {
		return nil, err
	}
	msg, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Message")
	}
	return msg, nil
}

func (s *contentService) DeleteMessage(ctx context.Context, rawID string) (*model.ContactUs, error) {
	msg, err := s.GetMessage(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if err := s.messages.Delete(ctx, msg.ID); err != nil {
		return nil, lookupError(err, "Message")
	}
	return msg, nil
}

// fill replaces *dst when value is not empty
func fill(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
