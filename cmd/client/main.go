// Консольный клиент каталога товаров. Чистый потребитель HTTP API,
// бизнес-логики не содержит.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type productRequest struct {
	ID       int64           `json:"id,omitempty"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int32           `json:"quantity"`
}

type productResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int32           `json:"quantity"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type client struct {
	baseURL string
	http    *http.Client
	in      *bufio.Scanner
}

func main() {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	c := &client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1",
		http:    &http.Client{Timeout: 10 * time.Second},
		in:      bufio.NewScanner(os.Stdin),
	}

	fmt.Println("===== Inventory Management System =====")

	for {
		fmt.Println("\nChoose an option:")
		fmt.Println("1. Add Product")
		fmt.Println("2. View All Products")
		fmt.Println("3. View Product by ID")
		fmt.Println("4. Update Product")
		fmt.Println("5. Delete Product")
		fmt.Println("6. Search Products")
		fmt.Println("7. Exit")

		choice := c.prompt("Enter choice: ")

		var err error
		switch choice {
		case "1":
			err = c.addProduct()
		case "2":
			err = c.viewAllProducts()
		case "3":
			err = c.viewProductByID()
		case "4":
			err = c.updateProduct()
		case "5":
			err = c.deleteProduct()
		case "6":
			err = c.searchProducts()
		case "7":
			fmt.Println("Exiting application...")
			return
		default:
			fmt.Println("Invalid choice.")
			continue
		}

		if err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func (c *client) addProduct() error {
	req, err := c.readProductFields()
	if err != nil {
		return err
	}

	var res map[string]int64
	if err := c.do(http.MethodPost, "/products", req, &res); err != nil {
		return err
	}

	fmt.Printf("Product added successfully, id: %d\n", res["id"])
	return nil
}

func (c *client) viewAllProducts() error {
	var products []productResponse
	if err := c.do(http.MethodGet, "/products", nil, &products); err != nil {
		return err
	}

	printProducts(products)
	return nil
}

func (c *client) viewProductByID() error {
	id, err := c.readID()
	if err != nil {
		return err
	}

	var product productResponse
	if err := c.do(http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return err
	}

	printProducts([]productResponse{product})
	return nil
}

func (c *client) updateProduct() error {
	id, err := c.readID()
	if err != nil {
		return err
	}

	req, err := c.readProductFields()
	if err != nil {
		return err
	}
	req.ID = id

	if err := c.do(http.MethodPut, "/products", req, nil); err != nil {
		return err
	}

	fmt.Println("Product updated successfully.")
	return nil
}

func (c *client) deleteProduct() error {
	id, err := c.readID()
	if err != nil {
		return err
	}

	if err := c.do(http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil); err != nil {
		return err
	}

	fmt.Println("Product deleted successfully.")
	return nil
}

func (c *client) searchProducts() error {
	keyword := c.prompt("Keyword: ")

	var products []productResponse
	path := "/products/search?keyword=" + url.QueryEscape(keyword)
	if err := c.do(http.MethodGet, path, nil, &products); err != nil {
		return err
	}

	printProducts(products)
	return nil
}

// do выполняет запрос к API и разбирает JSON-ответ в out (если out != nil).
// Не-2xx ответ превращается в ошибку с сообщением сервера.
func (c *client) do(method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%d: %s", apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *client) readProductFields() (*productRequest, error) {
	name := c.prompt("Name: ")
	category := c.prompt("Category: ")

	price, err := decimal.NewFromString(c.prompt("Price: "))
	if err != nil {
		return nil, fmt.Errorf("invalid price: %w", err)
	}

	quantity, err := strconv.ParseInt(c.prompt("Quantity: "), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity: %w", err)
	}

	return &productRequest{
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: int32(quantity),
	}, nil
}

func (c *client) readID() (int64, error) {
	id, err := strconv.ParseInt(c.prompt("Enter Product ID: "), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %w", err)
	}

	return id, nil
}

func (c *client) prompt(label string) string {
	fmt.Print(label)
	if !c.in.Scan() {
		return ""
	}

	return strings.TrimSpace(c.in.Text())
}

func printProducts(products []productResponse) {
	if len(products) == 0 {
		fmt.Println("No products found.")
		return
	}

	fmt.Println("\n--- Product List ---")
	for _, p := range products {
		fmt.Printf("%d | %s | %s | %s | Qty: %d\n", p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Quantity)
	}
}
