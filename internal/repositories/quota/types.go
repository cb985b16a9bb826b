package quota

import "github.com/cadavrebot/cadavre/internal/models"

// SaveQuotaInput contains parameters for saving a quota
type SaveQuotaInput struct {
	Quota *models.Quota
}

// GetQuotaInput contains parameters for retrieving a quota
type GetQuotaInput struct {
	Nick string
}

// DeleteQuotaInput contains parameters for removing a quota
type DeleteQuotaInput struct {
	Nick string
}

// ListQuotasOutput contains the result of listing every quota
type ListQuotasOutput struct {
	Quotas []*models.Quota
}
