package usecase

import (
	devicerepo "worship-backend/internal/device/repository"
	"worship-backend/internal/notify/domain"
)

// Collector expands user ids into the preference-filtered set of enabled
// device tokens eligible for one notification category.
type Collector struct {
	deviceRepo devicerepo.DeviceRepository
}

// NewCollector creates a new Collector
func NewCollector(deviceRepo devicerepo.DeviceRepository) *Collector {
	return &Collector{
		deviceRepo: deviceRepo,
	}
}

// CollectTokens returns an empty slice, not an error, when no tokens pass the
// gate. Tokens are deduplicated across chunks in case the same physical token
// is registered more than once.
func (c *Collector) CollectTokens(userIDs []string, category domain.Category) ([]string, error) {
	seen := make(map[string]bool)
	var tokens []string
	for _, chunk := range chunkIDs(dedup(userIDs), maxQueryValues) {
		devices, err := c.deviceRepo.FindEnabledByUserIDs(chunk)
		if err != nil {
			return nil, err
		}
		for _, d := range devices {
			if !d.Allows(string(category)) {
				continue
			}
			if !seen[d.Token] {
				seen[d.Token] = true
				tokens = append(tokens, d.Token)
			}
		}
	}
	return tokens, nil
}
