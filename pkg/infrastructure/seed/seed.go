package seed

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
)

type catalogJSON struct {
	Products []model.Product `json:"products"`
}

// Default returns the reference catalog the storefront starts with.
func Default() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Name:        "UltraBook Pro X1",
			Category:    "Laptopy",
			Price:       decimal.RequireFromString("4599.00"),
			Description: "Lekki i wydajny ultrabook do pracy biurowej i grafiki.",
			Image:       "https://picsum.photos/id/1/400/300",
			Stock:       15,
			Featured:    true,
		},
		{
			ID:          2,
			Name:        "Gaming Beast Z9",
			Category:    "Laptopy",
			Price:       decimal.RequireFromString("8299.99"),
			Description: "Potężna maszyna gamingowa z najnowszą kartą RTX.",
			Image:       "https://picsum.photos/id/2/400/300",
			Stock:       5,
		},
		{
			ID:          3,
			Name:        "SmartPhone Galaxy S25",
			Category:    "Smartfony",
			Price:       decimal.RequireFromString("3999.00"),
			Description: "Flagowy model z niesamowitym aparatem i ekranem AMOLED.",
			Image:       "https://picsum.photos/id/3/400/300",
			Stock:       20,
			Featured:    true,
		},
		{
			ID:          4,
			Name:        "EcoPhone 12",
			Category:    "Smartfony",
			Price:       decimal.RequireFromString("1299.00"),
			Description: "Budżetowy smartfon z wytrzymałą baterią.",
			Image:       "https://picsum.photos/id/4/400/300",
			Stock:       50,
		},
		{
			ID:          5,
			Name:        "Monitor 4K Creator",
			Category:    "Monitory",
			Price:       decimal.RequireFromString("2100.00"),
			Description: "Profesjonalny monitor z odwzorowaniem kolorów 100% sRGB.",
			Image:       "https://picsum.photos/id/5/400/300",
			Stock:       8,
		},
		{
			ID:          6,
			Name:        "Klawiatura Mechaniczna RGB",
			Category:    "Akcesoria",
			Price:       decimal.RequireFromString("349.00"),
			Description: "Klawiatura z przełącznikami Blue i podświetleniem.",
			Image:       "https://picsum.photos/id/6/400/300",
			Stock:       100,
		},
		{
			ID:          7,
			Name:        "Mysz Bezprzewodowa",
			Category:    "Akcesoria",
			Price:       decimal.RequireFromString("129.00"),
			Description: "Ergonomiczna mysz do pracy.",
			Image:       "https://picsum.photos/id/7/400/300",
			Stock:       45,
		},
		{
			ID:          8,
			Name:        "Dysk SSD 1TB NVMe",
			Category:    "Podzespoły",
			Price:       decimal.RequireFromString("450.00"),
			Description: "Superszybki dysk twardy nowej generacji.",
			Image:       "https://picsum.photos/id/8/400/300",
			Stock:       30,
		},
	}
}

func Load(filePath string) ([]model.Product, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", filePath)
	}

	var data catalogJSON
	if err = json.Unmarshal(file, &data); err != nil {
		return nil, errors.Wrapf(err, "decode catalog %s", filePath)
	}
	if err = model.ValidateCatalog(data.Products); err != nil {
		return nil, errors.Wrapf(err, "catalog %s", filePath)
	}
	return data.Products, nil
}

func Save(filePath string, products []model.Product) error {
	jsonData, err := json.MarshalIndent(catalogJSON{Products: products}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode catalog")
	}
	return errors.Wrapf(os.WriteFile(filePath, jsonData, 0666), "write catalog %s", filePath)
}
