package bookingcore

import (
	"context"

	"moveflow/models"
)

// The six rate collections are fetched individually so the pricing layer can
// load them concurrently and join the results. Inactive rows are returned
// as-is; pricing lookups filter on IsActive.

func (c *Client) GetServiceRates(ctx context.Context) ([]models.ServiceRate, error) {
	var rows []models.ServiceRate
	if err := c.get(ctx, "/rates/service-rates", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetTravelFees(ctx context.Context) ([]models.TravelFee, error) {
	var rows []models.TravelFee
	if err := c.get(ctx, "/rates/travel-fees", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetTruckFees(ctx context.Context) ([]models.TruckFee, error) {
	var rows []models.TruckFee
	if err := c.get(ctx, "/rates/truck-fees", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetStairFees(ctx context.Context) ([]models.StairFee, error) {
	var rows []models.StairFee
	if err := c.get(ctx, "/rates/stair-fees", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetSpecialItems(ctx context.Context) ([]models.SpecialItem, error) {
	var rows []models.SpecialItem
	if err := c.get(ctx, "/rates/special-items", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetAddons(ctx context.Context) ([]models.Addon, error) {
	var rows []models.Addon
	if err := c.get(ctx, "/rates/addons", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
