package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golden-thread/internal/auth"
	"golden-thread/internal/config"
	"golden-thread/internal/domain"

	"go.uber.org/zap"
)

type seedProduct struct {
	name, category string
	price, rating  float64
	image, desc    string
	sizes          []string
}

type seedCategory struct {
	name, slug, image string
}

type seedBlog struct {
	title, slug, excerpt, content, image string
}

type seedReview struct {
	name    string
	rating  int
	comment string
}

var seedProducts = []seedProduct{
	{"Goldline Bomber Jacket", "Men", 189, 4.7, "https://images.unsplash.com/photo-1520975693411-4373f4b0b47d?auto=format&fit=crop&w=1200&q=80", "Premium bomber with a satin-gold sheen and warm lining.", []string{"S", "M", "L", "XL"}},
	{"Golden Aura Dress", "Women", 199, 4.8, "https://images.unsplash.com/photo-1520975685467-82f5f0c0d8a2?auto=format&fit=crop&w=1200&q=80", "Elegant flow with luxe finish.", []string{"XS", "S", "M", "L"}},
	{"Mini Explorer Hoodie", "Kid", 79, 4.8, "https://images.unsplash.com/photo-1519238263530-99bdd11df2ea?auto=format&fit=crop&w=1200&q=80", "Soft hoodie for everyday adventures.", []string{"2Y", "4Y", "6Y", "8Y"}},
}

var seedCategories = []seedCategory{
	{"Men", "men", "https://images.unsplash.com/photo-1520975682031-a12c7d1fb26f?auto=format&fit=crop&w=1200&q=80"},
	{"Women", "women", "https://images.unsplash.com/photo-1512436991641-6745cdb1723f?auto=format&fit=crop&w=1200&q=80"},
	{"Kid", "kid", "https://images.unsplash.com/photo-1519238263530-99bdd11df2ea?auto=format&fit=crop&w=1200&q=80"},
	{"Hoodies", "hoodies", "https://images.unsplash.com/photo-1520975682031-a12c7d1fb26f?auto=format&fit=crop&w=1200&q=80"},
	{"Dresses", "dresses", "https://images.unsplash.com/photo-1520975685467-82f5f0c0d8a2?auto=format&fit=crop&w=1200&q=80"},
}

var seedBlogs = []seedBlog{
	{
		"Golden Theme Styling: 5 Outfit Ideas",
		"golden-theme-styling-5-ideas",
		"Learn how to style gold accents without overdoing it.",
		"Gold accents work best when balanced with neutrals like black, cream, and denim...\n\nTip 1: Keep one statement piece...\nTip 2: Pair with matte textures...\nTip 3: Use minimal accessories...\n\nTry these combinations for Men, Women, and Kid outfits.",
		"https://images.unsplash.com/photo-1520975916090-3105956dac38?auto=format&fit=crop&w=1200&q=80",
	},
	{
		"How to Choose the Perfect Fit",
		"how-to-choose-perfect-fit",
		"A quick guide to fit, fabric, and comfort for everyday wear.",
		"Choosing the right fit is about shoulder lines, waist comfort, and movement...\n\nWe recommend measuring...\n\nFor hoodies: size up for oversized looks.\nFor dresses: focus on waist and length.",
		"https://images.unsplash.com/photo-1520975693411-4373f4b0b47d?auto=format&fit=crop&w=1200&q=80",
	},
}

var seedReviews = []seedReview{
	{"Ayesha", 5, "Amazing quality and the golden vibe looks premium."},
	{"Omar", 5, "Fast delivery and great fitting. Love the hoodie!"},
	{"Sara", 4, "Nice fabric and stitching. The theme is very elegant."},
}

// Seed inserts the admin account and demo catalog content. Each table is only
// seeded while it is empty, so Seed is safe to run on every start.
func Seed(ctx context.Context, db *sql.DB, cfg config.SeedConfig, logger *zap.Logger) error {
	if err := seedAdmin(ctx, db, cfg, logger); err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)

	steps := []struct {
		table string
		run   func(context.Context, *sql.DB, time.Time) error
	}{
		{"products", seedProductRows},
		{"categories", seedCategoryRows},
		{"blogs", seedBlogRows},
		{"reviews", seedReviewRows},
	}

	for _, step := range steps {
		empty, err := tableEmpty(ctx, db, step.table)
		if err != nil {
			return err
		}
		if !empty {
			continue
		}
		if err := step.run(ctx, db, now); err != nil {
			return fmt.Errorf("failed to seed %s: %w", step.table, err)
		}
		logger.Info("Seeded table", zap.String("table", step.table))
	}

	return nil
}

func seedAdmin(ctx context.Context, db *sql.DB, cfg config.SeedConfig, logger *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var id int64
	err := db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = $1`, cfg.AdminEmail).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4)`,
		cfg.AdminName, cfg.AdminEmail, hash, domain.RoleAdmin,
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	logger.Info("Seeded admin account", zap.String("email", cfg.AdminEmail))
	return nil
}

// tableEmpty only ever receives table names from the fixed seed step list.
func tableEmpty(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count == 0, nil
}

func seedProductRows(ctx context.Context, db *sql.DB, now time.Time) error {
	for _, p := range seedProducts {
		_, err := db.ExecContext(ctx, `
			INSERT INTO products (name, category, price, rating, image, description, sizes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, p.name, p.category, p.price, p.rating, p.image, p.desc, domain.JoinSizes(p.sizes), now)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCategoryRows(ctx context.Context, db *sql.DB, now time.Time) error {
	for _, c := range seedCategories {
		_, err := db.ExecContext(ctx,
			`INSERT INTO categories (name, slug, image, created_at) VALUES ($1, $2, $3, $4)`,
			c.name, c.slug, c.image, now,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedBlogRows(ctx context.Context, db *sql.DB, now time.Time) error {
	for _, b := range seedBlogs {
		_, err := db.ExecContext(ctx,
			`INSERT INTO blogs (title, slug, excerpt, content, image, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
			b.title, b.slug, b.excerpt, b.content, b.image, now,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedReviewRows(ctx context.Context, db *sql.DB, now time.Time) error {
	for _, r := range seedReviews {
		_, err := db.ExecContext(ctx,
			`INSERT INTO reviews (name, rating, comment, created_at) VALUES ($1, $2, $3, $4)`,
			r.name, r.rating, r.comment, now,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
