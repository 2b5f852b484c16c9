package database

import (
	"context"
	"fmt"

	"github.com/thegambler1/qmdigital/models"
)

var samplePortfolioItems = []models.NewPortfolioItem{
	{
		Title:       "Neon Dreams",
		Description: "Abstract futuristic digital artwork with geometric patterns and neon colors",
		Category:    "Digital Art",
		ImageURL:    "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=600",
		Year:        2024,
	},
	{
		Title:       "Cyber Interface",
		Description: "Modern UI interface design with dark theme and cyan accents",
		Category:    "UI/UX",
		ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=600",
		Year:        2024,
	},
	{
		Title:       "Cyber City",
		Description: "3D rendered cyberpunk cityscape with neon lights",
		Category:    "3D Art",
		ImageURL:    "https://images.unsplash.com/photo-1516557070061-c3d1653fa646?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=600",
		Year:        2024,
	},
	{
		Title:       "Holo Brand",
		Description: "Holographic brand identity design with geometric elements",
		Category:    "Branding",
		ImageURL:    "https://images.unsplash.com/photo-1561070791-2526d30994b5?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=600",
		Year:        2024,
	},
	{
		Title:       "Neural Flow",
		Description: "Digital art featuring neural network patterns and AI visualization",
		Category:    "Digital Art",
		ImageURL:    "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=600",
		Year:        2024,
	},
	{
		Title:       "Future App",
		Description: "Futuristic mobile app interface with dark theme",
		Category:    "UI/UX",
		ImageURL:    "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=600",
		Year:        2024,
	},
}

var sampleProducts = []models.NewProduct{
	{
		Title:               "Cyberpunk Collection",
		Description:         "Premium digital art pack featuring 10 high-resolution cyberpunk illustrations perfect for commercial use.",
		Price:               "$49.99",
		ImageURL:            "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		ExternalCheckoutURL: "https://gumroad.com/l/cyberpunk-collection",
		Format:              "Digital Download",
		Details:             "4K Resolution",
		Featured:            true,
	},
	{
		Title:               "Future UI Kit",
		Description:         "Complete UI kit with 50+ components designed for modern applications with cyberpunk aesthetics.",
		Price:               "$79.99",
		ImageURL:            "https://images.unsplash.com/photo-1558655146-364adaf1fcc9?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		ExternalCheckoutURL: "https://gumroad.com/l/future-ui-kit",
		Format:              "Figma + Sketch",
		Details:             "50+ Components",
		Featured:            true,
	},
	{
		Title:               "3D Holo Pack",
		Description:         "Premium 3D holographic elements and shapes for creating stunning visual effects in your designs.",
		Price:               "$39.99",
		ImageURL:            "https://images.unsplash.com/photo-1617791160536-598cf32026fb?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		ExternalCheckoutURL: "https://gumroad.com/l/3d-holo-pack",
		Format:              "OBJ + C4D",
		Details:             "Ultra HD",
		Featured:            true,
	},
}

// DefaultSiteSettings is used when the settings row is first written
func DefaultSiteSettings() models.NewSiteSettings {
	return models.NewSiteSettings{
		SiteName:         "QM Digital",
		Tagline:          "Digital art, interfaces and brands from the neon edge",
		AboutTitle:       "About the Artist",
		AboutDescription: "Independent digital artist working across illustration, UI/UX, branding and 3D.",
		HeroTitle:        "Digital Art for the Future",
		HeroSubtitle:     "Portfolio pieces, commissions and downloadable art packs",
		ContactEmail:     "hello@qmdigital.art",
		SocialLinks:      models.SocialLinks{},
		MetaDescription:  "Portfolio and shop of a digital artist: illustration, UI/UX design, branding and 3D art.",
	}
}

// Seed fills empty collections with the sample catalogue and creates the
// settings row if it is missing. Collections that already hold data are left alone.
func Seed(ctx context.Context, s Storage) error {
	items, err := s.ListPortfolioItems(ctx)
	if err != nil {
		return fmt.Errorf("check portfolio items: %w", err)
	}
	if len(items) == 0 {
		for _, item := range samplePortfolioItems {
			if _, err := s.CreatePortfolioItem(ctx, item); err != nil {
				return fmt.Errorf("seed portfolio item %q: %w", item.Title, err)
			}
		}
	}

	products, err := s.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("check products: %w", err)
	}
	if len(products) == 0 {
		for _, product := range sampleProducts {
			if _, err := s.CreateProduct(ctx, product); err != nil {
				return fmt.Errorf("seed product %q: %w", product.Title, err)
			}
		}
	}

	settings, err := s.GetSiteSettings(ctx)
	if err != nil {
		return fmt.Errorf("check site settings: %w", err)
	}
	if settings == nil {
		if _, err := s.UpdateSiteSettings(ctx, models.SiteSettingsUpdate{}); err != nil {
			return fmt.Errorf("seed site settings: %w", err)
		}
	}
	return nil
}
