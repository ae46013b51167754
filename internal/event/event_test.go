package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var got []string

	d.Subscribe(ListenerFunc(func(e Event) { got = append(got, "a:"+string(e.Type)) }), TowerHit, TowerDestroyed)
	d.Subscribe(ListenerFunc(func(e Event) { got = append(got, "b:"+string(e.Type)) }), TowerHit)

	d.Dispatch(Event{Type: TowerHit, Data: TowerData{Life: 2}})
	d.Dispatch(Event{Type: TowerDestroyed})
	d.Dispatch(Event{Type: EnemySpawned})

	assert.Equal(t, []string{"a:TowerHit", "b:TowerHit", "a:TowerDestroyed"}, got)
}
