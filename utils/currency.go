package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type CurrencyRate struct {
	Code string  `json:"currency"`
	Rate float64 `json:"rate"`
}

var (
	cachedRates  = sync.Map{}
	lastFetch    time.Time
	cacheTimeout = 1 * time.Hour
	apiURL       = "https://v6.exchangerate-api.com/v6/e8c2f4afec9e1abf33fd661d/latest/"
)

func GetCurrencyRate(currencyCode string) (float64, error) {
	// Check if rate is in cache and it's still valid
	if rate, ok := cachedRates.Load(currencyCode); ok {
		if time.Since(lastFetch) < cacheTimeout {
			return rate.(CurrencyRate).Rate, nil
		}
	}

	if time.Since(lastFetch) >= cacheTimeout {
		if err := fetchExchangeRates(); err != nil {
			log.Printf("Failed to fetch exchange rates: %v", err)
			// Use cached data if available
			if rate, ok := cachedRates.Load(currencyCode); ok {
				return rate.(CurrencyRate).Rate, nil
			}
			return 0, err
		}
	}

	if rate, ok := cachedRates.Load(currencyCode); ok {
		return rate.(CurrencyRate).Rate, nil
	}

	return 0, errors.New("currency not found")
}

func fetchExchangeRates() error {
	client := http.Client{Timeout: 10 * time.Second}
	url := apiURL + "USD" // Base currency is set to USD for better compatibility

	var lastErr error
	for i := 0; i < 3; i++ {
		resp, err := client.Get(url)
		if err != nil {
			lastErr = err
			log.Printf("Error fetching rates (attempt %d): %v", i+1, err)
			time.Sleep(2 * time.Second)
			continue
		}

		var response struct {
			ConversionRates map[string]float64 `json:"conversion_rates"`
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = errors.New("API returned non-OK status")
			log.Printf("API returned non-OK status: %d (attempt %d)", resp.StatusCode, i+1)
			time.Sleep(2 * time.Second)
			continue
		}
		err = json.NewDecoder(resp.Body).Decode(&response)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			log.Printf("Error decoding API response (attempt %d): %v", i+1, err)
			time.Sleep(2 * time.Second)
			continue
		}

		if len(response.ConversionRates) > 0 {
			for code, rate := range response.ConversionRates {
				if rate > 0 {
					cachedRates.Store(code, CurrencyRate{Code: code, Rate: rate})
				}
			}
			lastFetch = time.Now()
			log.Println("Exchange rates cache updated successfully")
			return nil
		}

		lastErr = errors.New("no valid data to update cache")
		time.Sleep(2 * time.Second)
	}

	return lastErr
}

// ConvertCurrency converts a decimal amount between two currencies using the
// cached USD-based rates. The result keeps 2 fractional digits.
func ConvertCurrency(amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	fromRate, err := GetCurrencyRate(fromCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := GetCurrencyRate(toCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	if fromRate == 0 || toRate == 0 {
		return decimal.Zero, errors.New("invalid currency rates")
	}

	ratio := decimal.NewFromFloat(toRate).Div(decimal.NewFromFloat(fromRate))
	return amount.Mul(ratio).Round(2), nil
}
