package effect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		effect Effect
		want   string
	}{
		{NewAddedItem("Socks", "PiSock"), "Added item: 'Socks'"},
		{NewIncreasedQuantity("Socks", "PiSock"), "Increased quantity of 'Socks'"},
		{NewRemovedItem("Socks"), "Removed item: 'Socks'"},
		{NewMerged("Socks", 6), "Merged 'Socks' (now 6)"},
		{NewAddedBaggage("carry-on"), "Added new baggage: carry on"},
		{NewAddedBaggage("large-checked"), "Added new baggage: large checked"},
		{NewDeletedBaggage("Weekend bag"), "Baggage deleted: Weekend bag"},
		{NewDeletedBaggage(""), "Baggage deleted"},
		{NewClearedAll(), "All luggage data cleared"},
		{NewExported("luggage-tracker.csv", 3), "CSV exported successfully"},
		{NewImported(1, 2), "CSV imported successfully"},
		{NewError(errors.New("disk full")), "disk full"},
		{Effect{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.effect.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.effect.Message())
		})
	}
}

func TestMultiSkipsNone(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	s := Multi(a, nil, b)
	s.Notify(Effect{})
	s.Notify(NewClearedAll())
	assert.Equal(t, []Kind{ClearedAll}, a.Kinds())
	assert.Equal(t, []Kind{ClearedAll}, b.Kinds())
	assert.Equal(t, ClearedAll, b.Last().Kind)
}
