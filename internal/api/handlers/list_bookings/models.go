package list_bookings

import (
	"net/url"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/service/bookings/models"
)

// FilterFromQuery собирает фильтр выборки из query-параметров
func FilterFromQuery(query url.Values) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{}
	if v := query.Get("month"); v != "" {
		req.Month = &v
	}
	if v := query.Get("licenseType"); v != "" {
		req.LicenseType = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	return req
}
