package rest

import (
	"time"

	"github.com/heartmarshall/poetic-threads/internal/domain"
	"github.com/heartmarshall/poetic-threads/internal/service/quota"
)

type themeDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Pages       int       `json:"pages"`
	CreatedAt   time.Time `json:"created_at"`
}

func toThemeDTO(t domain.Theme) themeDTO {
	return themeDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Pages:       t.Pages,
		CreatedAt:   t.CreatedAt,
	}
}

type stanzaDTO struct {
	ID         int64     `json:"id"`
	ThemeID    int64     `json:"theme_id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	PageNumber int       `json:"page_number"`
	CreatedAt  time.Time `json:"created_at"`
	ThemeTitle string    `json:"theme_title,omitempty"`
}

func toStanzaDTO(s domain.Stanza) stanzaDTO {
	return stanzaDTO{
		ID:         s.ID,
		ThemeID:    s.ThemeID,
		AuthorID:   s.AuthorID,
		AuthorName: s.AuthorName,
		Content:    s.Content,
		Status:     s.Status.String(),
		PageNumber: s.PageNumber,
		CreatedAt:  s.CreatedAt,
	}
}

func toStanzaDTOs(items []domain.Stanza) []stanzaDTO {
	out := make([]stanzaDTO, len(items))
	for i, s := range items {
		out[i] = toStanzaDTO(s)
	}
	return out
}

type stanzaPageDTO struct {
	Items      []stanzaDTO `json:"items"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
	Total      int         `json:"total"`
	MyStanzas  []stanzaDTO `json:"my_stanzas,omitempty"`
}

func toStanzaPageDTO(p *domain.StanzaPage) stanzaPageDTO {
	dto := stanzaPageDTO{
		Items:      toStanzaDTOs(p.Items),
		Page:       p.Page,
		TotalPages: p.TotalPages,
		Total:      p.Total,
	}
	if p.MyStanzas != nil {
		dto.MyStanzas = toStanzaDTOs(p.MyStanzas)
	}
	return dto
}

type quotaDTO struct {
	WrittenToday int       `json:"written_today"`
	DailyCap     int       `json:"daily_cap"`
	Remaining    int       `json:"remaining"`
	LastThemeID  *int64    `json:"last_theme_id"`
	ResetsAt     time.Time `json:"resets_at"`
}

func toQuotaDTO(s *quota.Status) quotaDTO {
	return quotaDTO{
		WrittenToday: s.WrittenToday,
		DailyCap:     s.DailyCap,
		Remaining:    s.Remaining,
		LastThemeID:  s.LastThemeID,
		ResetsAt:     s.ResetsAt,
	}
}

type auditDTO struct {
	ID        string    `json:"id"`
	ActorID   int64     `json:"actor_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	CreatedAt time.Time `json:"created_at"`
}
