package bookingcore

import (
	"context"

	"moveflow/models"
)

// ListServices returns the bookable service catalog with hidden entries
// filtered out.
func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var rows []serviceRow
	if err := c.get(ctx, "/services", &rows); err != nil {
		return nil, err
	}

	services := make([]models.Service, 0, len(rows))
	for _, row := range rows {
		if row.Hidden {
			continue
		}
		services = append(services, row.toModel())
	}
	return services, nil
}
