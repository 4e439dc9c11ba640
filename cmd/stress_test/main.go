// Load generator: drives concurrent checkouts against a running server and
// verifies every returned order id resolves on the confirmation read path.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

const (
	totalCheckouts = 50
	productID      = "xx59-headphones"
)

func baseURL() string {
	if v := os.Getenv("BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func main() {
	base := baseURL()
	client := &http.Client{Timeout: 10 * time.Second}

	if _, err := client.Get(base + "/health"); err != nil {
		log.Fatalf("server not reachable at %s: %v", base, err)
	}

	var successCount atomic.Int32
	var failCount atomic.Int32
	orderIDs := make(chan string, totalCheckouts)

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalCheckouts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			session := fmt.Sprintf("stress-%d-%d", start.UnixNano(), n)

			orderID, err := runCheckout(client, base, session)
			if err != nil {
				log.Printf("checkout %d: %v", n, err)
				failCount.Add(1)
				return
			}
			successCount.Add(1)
			orderIDs <- orderID
		}(i)
	}

	wg.Wait()
	close(orderIDs)
	elapsed := time.Since(start)

	// every created order must be retrievable by its business id
	var resolved int
	for id := range orderIDs {
		resp, err := client.Get(base + "/api/orders/" + id)
		if err == nil && resp.StatusCode == http.StatusOK {
			resolved++
		}
		if resp != nil {
			resp.Body.Close()
		}
	}

	success := successCount.Load()
	fail := failCount.Load()

	fmt.Println("========== CHECKOUT STRESS RESULTS ==========")
	fmt.Printf("Total Checkouts:  %d\n", totalCheckouts)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Failed:           %d\n", fail)
	fmt.Printf("Resolved by ID:   %d\n", resolved)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("=============================================")

	if success == totalCheckouts && resolved == int(success) {
		fmt.Println("PASS: every checkout produced a retrievable order")
	} else {
		fmt.Println("FAIL: some checkouts did not produce a retrievable order")
	}
}

func runCheckout(client *http.Client, base, session string) (string, error) {
	addBody, _ := json.Marshal(map[string]any{"product_id": productID, "quantity": 1})
	resp, err := client.Post(base+"/api/cart/"+session+"/items", "application/json", bytes.NewReader(addBody))
	if err != nil {
		return "", fmt.Errorf("add item: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("add item: status %d", resp.StatusCode)
	}

	checkoutBody, _ := json.Marshal(map[string]any{
		"session":       session,
		"name":          "Stress Tester",
		"email":         "stress@example.com",
		"phone":         "5550000000",
		"address":       "1 Throughput Way",
		"city":          "Springfield",
		"state":         "IL",
		"zipCode":       "62704",
		"country":       "US",
		"paymentMethod": "cashOnDelivery",
	})
	resp, err = client.Post(base+"/api/checkout", "application/json", bytes.NewReader(checkoutBody))
	if err != nil {
		return "", fmt.Errorf("checkout: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("checkout: status %d", resp.StatusCode)
	}

	var created struct {
		OrderID string `json:"order_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return created.OrderID, nil
}
