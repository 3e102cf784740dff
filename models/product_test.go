package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercentage(t *testing.T) {
	assert.InDelta(t, 20.0, DiscountPercentage(1000, 800), 0.001)
	assert.InDelta(t, 50.0, DiscountPercentage(3000, 1500), 0.001)

	assert.Zero(t, DiscountPercentage(0, 800), "no original price means no discount")
	assert.Zero(t, DiscountPercentage(800, 800), "equal prices mean no discount")
	assert.Zero(t, DiscountPercentage(800, 1000), "price above original means no discount")
}

func TestComputeDiscountIsDerived(t *testing.T) {
	p := Product{Price: 750, OriginalPrice: 1000, DiscountPercentage: 99}

	// Whatever came from storage is overwritten on read.
	p.ComputeDiscount()
	assert.InDelta(t, 25.0, p.DiscountPercentage, 0.001)

	p.OriginalPrice = 0
	p.ComputeDiscount()
	assert.Zero(t, p.DiscountPercentage)
}

func TestCanDecrementLike(t *testing.T) {
	p := Product{Likes: 1}
	assert.True(t, p.CanDecrementLike())

	p.Likes = 0
	assert.False(t, p.CanDecrementLike(), "zero likes must stay at zero")
}

func TestQuestionPending(t *testing.T) {
	q := ProductQuestion{}
	assert.True(t, q.Pending())

	q.Answers = []ProductAnswer{{AnswerText: "Yes, it ships with a charger."}}
	assert.False(t, q.Pending())
}

func TestLocalizedGet(t *testing.T) {
	name := Localized{En: "Smart Watch", Ar: "ساعة ذكية"}

	assert.Equal(t, "Smart Watch", name.Get("en"))
	assert.Equal(t, "ساعة ذكية", name.Get("ar"))
}
