package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dukastore/dukastore-backend/config"
	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/internal/db"
	"github.com/dukastore/dukastore-backend/pkg/util"
	"github.com/lib/pq"
	"github.com/xuri/excelize/v2"
)

// Imports a product catalog from an XLSX export. Expected columns:
// title | description | price | quantity | category | brand | images | featured
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}
	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	productRepo := repository.NewProductRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d\n", len(products))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 500
	if err := productRepo.BulkCreate(products, batchSize); err != nil {
		log.Fatal("Failed to bulk create products:", err)
	}

	fmt.Printf("Import completed: %d products\n", len(products))
}

func readProductsFromXLSX(filePath string) ([]model.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows found in XLSX file")
	}

	categories := map[string]uint{}
	brands := map[string]uint{}

	var products []model.Product
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			// header row
			continue
		}
		if len(row) < 4 {
			skipped++
			continue
		}

		title := strings.TrimSpace(row[0])
		if title == "" {
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil || price <= 0 {
			skipped++
			continue
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil || quantity < 0 {
			quantity = 0
		}

		product := model.Product{
			Title:       title,
			Slug:        util.ProductSlug(title),
			Description: cell(row, 1),
			Price:       price,
			Quantity:    quantity,
		}

		if name := cell(row, 4); name != "" {
			id, err := findOrCreateCategory(categories, name)
			if err != nil {
				return nil, err
			}
			product.CategoryID = &id
		}
		if name := cell(row, 5); name != "" {
			id, err := findOrCreateBrand(brands, name)
			if err != nil {
				return nil, err
			}
			product.BrandID = &id
		}
		if images := cell(row, 6); images != "" {
			product.Images = pq.StringArray(strings.Split(images, ","))
		}
		product.IsFeatured = strings.EqualFold(cell(row, 7), "true")

		products = append(products, product)
	}

	if skipped > 0 {
		fmt.Printf("Skipped %d invalid rows\n", skipped)
	}
	return products, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func findOrCreateCategory(cache map[string]uint, name string) (uint, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}

	var category model.Category
	err := db.GetDB().Where("title = ?", name).First(&category).Error
	if err != nil {
		category = model.Category{Title: name}
		if err := db.GetDB().Create(&category).Error; err != nil {
			return 0, fmt.Errorf("failed to create category %q: %w", name, err)
		}
	}

	cache[name] = category.ID
	return category.ID, nil
}

func findOrCreateBrand(cache map[string]uint, name string) (uint, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}

	var brand model.Brand
	err := db.GetDB().Where("title = ?", name).First(&brand).Error
	if err != nil {
		brand = model.Brand{Title: name}
		if err := db.GetDB().Create(&brand).Error; err != nil {
			return 0, fmt.Errorf("failed to create brand %q: %w", name, err)
		}
	}

	cache[name] = brand.ID
	return brand.ID, nil
}
