package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"moveflow/config"

	"github.com/gin-gonic/gin"
)

// AutocompleteResponse represents the structure of the response from the
// Google Places Autocomplete API.
type AutocompleteResponse struct {
	Predictions []struct {
		Description string `json:"description"`
		PlaceID     string `json:"place_id"`
	} `json:"predictions"`
	Status string `json:"status"`
}

// AutocompleteAddress proxies address lookups for the pickup and destination
// fields so the API key stays server-side.
func AutocompleteAddress(c *gin.Context) {
	input := c.Query("input")
	if input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: input"})
		return
	}

	apiKey := config.AppConfig.GoogleAPIKey
	if apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API authentication error"})
		return
	}

	reqURL := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/autocomplete/json?input=%s&types=address&key=%s",
		url.QueryEscape(input), apiKey,
	)

	resp, err := http.Get(reqURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}
	defer resp.Body.Close()

	var data AutocompleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"predictions": data.Predictions})
}

// CompanyReviews fetches the Google reviews block shown on the landing step.
func CompanyReviews(c *gin.Context) {
	placeID := c.Query("placeId")
	if placeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: placeId"})
		return
	}

	apiKey := config.AppConfig.GoogleAPIKey
	if apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API authentication error"})
		return
	}

	reqURL := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/details/json?place_id=%s&fields=name,rating,reviews,user_ratings_total&key=%s",
		url.QueryEscape(placeID), apiKey,
	)

	resp, err := http.Get(reqURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}
	defer resp.Body.Close()

	var data struct {
		Result map[string]interface{} `json:"result"`
		Status string                 `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}
	if data.Status != "OK" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No reviews found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": data.Result})
}

// MoveDayWeather fetches the forecast shown next to the chosen moving date.
func MoveDayWeather(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: city"})
		return
	}

	apiKey := config.AppConfig.WeatherAPIKey
	if apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API authentication error"})
		return
	}

	reqURL := fmt.Sprintf(
		"https://api.weatherapi.com/v1/forecast.json?q=%s&days=3&key=%s",
		url.QueryEscape(city), apiKey,
	)

	resp, err := http.Get(reqURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Weather lookup failed"})
		return
	}
	defer resp.Body.Close()

	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode weather response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"forecast": data["forecast"], "location": data["location"]})
}
