// Command seed resets the product catalog and loads the sample products.
package main

import (
	"log"

	"shopback/internal/config"
	"shopback/internal/models"
	"shopback/internal/repositories"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	defer func() {
		if repositories.DB != nil {
			sqlDB, err := repositories.DB.DB()
			if err != nil {
				log.Printf("⚠️ Failed to get SQL DB instance: %v", err)
			} else if err := sqlDB.Close(); err != nil {
				log.Printf("⚠️ Failed to close PostgreSQL connection: %v", err)
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	productRepo := repositories.NewProductRepository(repositories.DB)

	if err := productRepo.DeleteAll(); err != nil {
		log.Fatal("Failed to clear existing products:", err)
	}
	log.Println("Existing products cleared")

	for _, p := range sampleProducts() {
		p := p
		if err := productRepo.Create(&p); err != nil {
			log.Fatalf("Failed to create product %q: %v", p.Name, err)
		}
	}

	log.Printf("✅ Seeded %d products", len(sampleProducts()))
}

func sampleProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Premium Smartphone",
			Description: "Latest flagship smartphone with high-end features, 6.7-inch AMOLED display, 128GB storage, and 12GB RAM.",
			Price:       999.99,
			Category:    models.CategoryA,
			Image:       "https://images.unsplash.com/photo-1598327105666-5b89351aff97",
		},
		{
			Name:        "Wireless Headphones",
			Description: "Noise-cancelling wireless headphones with 30-hour battery life and premium sound quality.",
			Price:       249.99,
			Category:    models.CategoryB,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
		},
		{
			Name:        "Smart Watch",
			Description: "Fitness tracker and smartwatch with heart rate monitoring, GPS, and 7-day battery life.",
			Price:       199.99,
			Category:    models.CategoryB,
			Image:       "https://images.unsplash.com/photo-1579586337278-3befd40fd17a",
		},
		{
			Name:        "Laptop",
			Description: "Ultra-thin laptop with 16GB RAM, 512GB SSD, and 14-inch 4K display.",
			Price:       1299.99,
			Category:    models.CategoryA,
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853",
		},
		{
			Name:        "Bluetooth Speaker",
			Description: "Portable waterproof Bluetooth speaker with 24-hour battery life and deep bass.",
			Price:       79.99,
			Category:    models.CategoryC,
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1",
		},
		{
			Name:        "Tablet",
			Description: "10.5-inch tablet with 64GB storage, perfect for entertainment and productivity.",
			Price:       349.99,
			Category:    models.CategoryB,
			Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0",
		},
		{
			Name:        "Gaming Console",
			Description: "Next-generation gaming console with 1TB storage and 4K gaming capabilities.",
			Price:       499.99,
			Category:    models.CategoryA,
			Image:       "https://images.unsplash.com/photo-1486572788966-cfd3df1f5b42",
		},
	}
}
