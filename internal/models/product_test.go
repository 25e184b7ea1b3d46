package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestPrice(t *testing.T) {
	p := &Product{}
	assert.Equal(t, 0.0, p.LatestPrice())

	p.Prices = []PriceEntry{
		{Date: "2025-08-01", Price: 30},
		{Date: "2025-08-02", Price: 35},
	}
	assert.Equal(t, 35.0, p.LatestPrice())
}

func TestHasPriceFor(t *testing.T) {
	p := &Product{Prices: []PriceEntry{{Date: "2025-08-01", Price: 30}}}

	assert.True(t, p.HasPriceFor("2025-08-01"))
	assert.False(t, p.HasPriceFor("2025-08-02"))
}

func TestEffectiveRole(t *testing.T) {
	assert.Equal(t, RoleUser, (&User{}).EffectiveRole())
	assert.Equal(t, RoleUser, (*User)(nil).EffectiveRole())
	assert.Equal(t, RoleAdmin, (&User{Role: RoleAdmin}).EffectiveRole())
}
