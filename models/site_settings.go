package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SocialLinks maps a platform name (e.g. "instagram") to a profile URL
type SocialLinks map[string]string

// Clone returns an independent copy of the mapping
func (s SocialLinks) Clone() SocialLinks {
	out := make(SocialLinks, len(s))
	for platform, url := range s {
		out[platform] = url
	}
	return out
}

// SiteSettings holds the site-wide copy and branding. There is at most one row.
type SiteSettings struct {
	ID               string                          `json:"id" db:"id" gorm:"type:varchar(36);primaryKey;not null"`
	SiteName         string                          `json:"siteName" db:"site_name" gorm:"column:site_name;type:text;not null"`
	Tagline          string                          `json:"tagline" db:"tagline" gorm:"type:text;not null"`
	AboutTitle       string                          `json:"aboutTitle" db:"about_title" gorm:"column:about_title;type:text;not null"`
	AboutDescription string                          `json:"aboutDescription" db:"about_description" gorm:"column:about_description;type:text;not null"`
	HeroTitle        string                          `json:"heroTitle" db:"hero_title" gorm:"column:hero_title;type:text;not null"`
	HeroSubtitle     string                          `json:"heroSubtitle" db:"hero_subtitle" gorm:"column:hero_subtitle;type:text;not null"`
	ContactEmail     string                          `json:"contactEmail" db:"contact_email" gorm:"column:contact_email;type:text;not null"`
	SocialLinks      datatypes.JSONType[SocialLinks] `json:"socialLinks" db:"social_links" gorm:"column:social_links;not null"`
	MetaDescription  string                          `json:"metaDescription" db:"meta_description" gorm:"column:meta_description;type:text;not null"`
	FaviconURL       *string                         `json:"faviconUrl,omitempty" db:"favicon_url" gorm:"column:favicon_url;type:text"`
	LogoURL          *string                         `json:"logoUrl,omitempty" db:"logo_url" gorm:"column:logo_url;type:text"`
	UpdatedAt        time.Time                       `json:"updatedAt" db:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

func (s *SiteSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	return nil
}

// Links returns the social links as a plain map
func (s SiteSettings) Links() SocialLinks {
	return s.SocialLinks.Data()
}

// Clone returns a copy that shares no mutable state with s
func (s SiteSettings) Clone() SiteSettings {
	out := s
	out.SocialLinks = datatypes.NewJSONType(s.Links().Clone())
	if s.FaviconURL != nil {
		v := *s.FaviconURL
		out.FaviconURL = &v
	}
	if s.LogoURL != nil {
		v := *s.LogoURL
		out.LogoURL = &v
	}
	return out
}

// NewSiteSettings is the insertable subset of SiteSettings
type NewSiteSettings struct {
	SiteName         string      `json:"siteName"`
	Tagline          string      `json:"tagline"`
	AboutTitle       string      `json:"aboutTitle"`
	AboutDescription string      `json:"aboutDescription"`
	HeroTitle        string      `json:"heroTitle"`
	HeroSubtitle     string      `json:"heroSubtitle"`
	ContactEmail     string      `json:"contactEmail"`
	SocialLinks      SocialLinks `json:"socialLinks"`
	MetaDescription  string      `json:"metaDescription"`
	FaviconURL       *string     `json:"faviconUrl,omitempty"`
	LogoURL          *string     `json:"logoUrl,omitempty"`
}

func (n NewSiteSettings) Record(id string, updatedAt time.Time) SiteSettings {
	links := n.SocialLinks
	if links == nil {
		links = SocialLinks{}
	}
	return SiteSettings{
		ID:               id,
		SiteName:         n.SiteName,
		Tagline:          n.Tagline,
		AboutTitle:       n.AboutTitle,
		AboutDescription: n.AboutDescription,
		HeroTitle:        n.HeroTitle,
		HeroSubtitle:     n.HeroSubtitle,
		ContactEmail:     n.ContactEmail,
		SocialLinks:      datatypes.NewJSONType(links.Clone()),
		MetaDescription:  n.MetaDescription,
		FaviconURL:       n.FaviconURL,
		LogoURL:          n.LogoURL,
		UpdatedAt:        updatedAt,
	}
}

// SiteSettingsUpdate carries a partial update. Nil fields are left untouched;
// a present socialLinks replaces the whole mapping.
type SiteSettingsUpdate struct {
	SiteName         *string     `json:"siteName,omitempty"`
	Tagline          *string     `json:"tagline,omitempty"`
	AboutTitle       *string     `json:"aboutTitle,omitempty"`
	AboutDescription *string     `json:"aboutDescription,omitempty"`
	HeroTitle        *string     `json:"heroTitle,omitempty"`
	HeroSubtitle     *string     `json:"heroSubtitle,omitempty"`
	ContactEmail     *string     `json:"contactEmail,omitempty" validate:"omitempty,email"`
	SocialLinks      SocialLinks `json:"socialLinks,omitempty" validate:"omitempty,dive,keys,required,endkeys,url"`
	MetaDescription  *string     `json:"metaDescription,omitempty"`
	FaviconURL       *string     `json:"faviconUrl,omitempty"`
	LogoURL          *string     `json:"logoUrl,omitempty"`
}

func (u SiteSettingsUpdate) Apply(s *SiteSettings) {
	if u.SiteName != nil {
		s.SiteName = *u.SiteName
	}
	if u.Tagline != nil {
		s.Tagline = *u.Tagline
	}
	if u.AboutTitle != nil {
		s.AboutTitle = *u.AboutTitle
	}
	if u.AboutDescription != nil {
		s.AboutDescription = *u.AboutDescription
	}
	if u.HeroTitle != nil {
		s.HeroTitle = *u.HeroTitle
	}
	if u.HeroSubtitle != nil {
		s.HeroSubtitle = *u.HeroSubtitle
	}
	if u.ContactEmail != nil {
		s.ContactEmail = *u.ContactEmail
	}
	if u.SocialLinks != nil {
		s.SocialLinks = datatypes.NewJSONType(u.SocialLinks.Clone())
	}
	if u.MetaDescription != nil {
		s.MetaDescription = *u.MetaDescription
	}
	// an empty string clears the optional images
	if u.FaviconURL != nil {
		s.FaviconURL = optional(*u.FaviconURL)
	}
	if u.LogoURL != nil {
		s.LogoURL = optional(*u.LogoURL)
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
