// Package sqlscript renders the database bootstrap script shown in the admin panel.
// It only reads the catalog it is given.
package sqlscript

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
)

const scriptTemplate = `-- SKRYPT TWORZĄCY BAZĘ DANYCH

CREATE DATABASE IF NOT EXISTS {{.Database}};
USE {{.Database}};

-- Tabela Użytkowników
CREATE TABLE users (
    id INT AUTO_INCREMENT PRIMARY KEY,
    username VARCHAR(50) NOT NULL UNIQUE,
    password_hash VARCHAR(255) NOT NULL,
    email VARCHAR(100) NOT NULL,
    role ENUM('admin', 'employee', 'client') DEFAULT 'client',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Tabela Produktów
CREATE TABLE products (
    id INT AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    category VARCHAR(50),
    price DECIMAL(10, 2) NOT NULL,
    stock_quantity INT DEFAULT 0,
    description TEXT,
    image_url VARCHAR(255)
);

-- Tabela Zamówień
CREATE TABLE orders (
    id INT AUTO_INCREMENT PRIMARY KEY,
    user_id INT,
    total_amount DECIMAL(10, 2) NOT NULL,
    status ENUM('pending', 'completed', 'cancelled') DEFAULT 'pending',
    order_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (user_id) REFERENCES users(id)
);

-- Tabela Elementów Zamówienia
CREATE TABLE order_items (
    id INT AUTO_INCREMENT PRIMARY KEY,
    order_id INT,
    product_id INT,
    quantity INT NOT NULL,
    price_at_purchase DECIMAL(10, 2) NOT NULL,
    FOREIGN KEY (order_id) REFERENCES orders(id),
    FOREIGN KEY (product_id) REFERENCES products(id)
);
{{if .Products}}
-- Przykładowe dane
INSERT INTO products (name, category, price, stock_quantity) VALUES
{{range $i, $p := .Products}}{{if $i}},
{{end}}('{{quote $p.Name}}', '{{quote $p.Category}}', {{$p.Price.StringFixed 2}}, {{$p.Stock}}){{end}};
{{end}}`

const DefaultDatabase = "elektro_shop"

var script = template.Must(template.New("sql").Funcs(template.FuncMap{
	"quote": quote,
}).Parse(scriptTemplate))

type scriptData struct {
	Database string
	Products []model.Product
}

// Generate renders the bootstrap script with an INSERT of the given products.
func Generate(products []model.Product) (string, error) {
	var b strings.Builder
	if err := script.Execute(&b, scriptData{Database: DefaultDatabase, Products: products}); err != nil {
		return "", errors.Wrap(err, "render sql script")
	}
	return strings.TrimSpace(b.String()), nil
}

func quote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
