package analytics

import (
	"encoding/json"
	"testing"

	ruddertyper "github.com/rudderlabs/ruddertyper-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func get(t *testing.T, p *ruddertyper.Properties, key string) interface{} {
	t.Helper()
	v, ok := p.Get(key)
	require.True(t, ok, "expected key %q", key)
	return v
}

func TestSetterStoresConvertedObject(t *testing.T) {
	universe := NewUniverse1Builder().Name(ptr("Milky Way")).Occupants(ptr(int64(8))).Build()

	collision := NewPropertyObjectNameCollision2Builder().Universe(universe).Build()

	assert.Same(t, universe.ToProperties(), get(t, collision.ToProperties(), "universe"))
}

func TestSetterStoresExplicitNull(t *testing.T) {
	collision := NewPropertyObjectNameCollision2Builder().Universe(nil).Build()
	universe := NewUniverse1Builder().Name(nil).Occupants(nil).Build()

	assert.Nil(t, get(t, collision.ToProperties(), "universe"))
	assert.Nil(t, get(t, universe.ToProperties(), "name"))
	assert.Nil(t, get(t, universe.ToProperties(), "occupants"))

	bytes, err := json.Marshal(universe.ToProperties())
	require.NoError(t, err)
	assert.Equal(t, `{"name":null,"occupants":null}`, string(bytes))
}

func TestBuildWithoutValues(t *testing.T) {
	order := NewOrderCompletedBuilder().Build()
	assert.Equal(t, 0, order.ToProperties().Len())
}

func TestBuildIsASnapshot(t *testing.T) {
	builder := NewIdentifyBuilder().Email("a@example.com")
	first := builder.Build()

	builder.Plan(ptr("pro"))
	second := builder.Build()

	assert.True(t, first.ToProperties().IsFrozen())
	assert.Equal(t, []string{"email"}, first.ToProperties().Keys())
	assert.Equal(t, []string{"email", "plan"}, second.ToProperties().Keys())
}

func TestOrderCompletedSerializesNestedLists(t *testing.T) {
	shoe := NewProductBuilder().ProductID("shoe").Price(ptr(59.5)).Tags([]string{"sale"}).Build()
	sock := NewProductBuilder().ProductID("sock").Quantity(ptr(int64(3))).Build()

	order := NewOrderCompletedBuilder().
		OrderID("o-1").
		Total(ptr(79.5)).
		Products([]*Product{shoe, sock}).
		Shipments([][]*Product{{shoe}, {sock, nil}}).
		Metadata([]interface{}{"gift", []interface{}{sock, 3}}).
		Build()
	props := order.ToProperties()

	assert.Equal(t, []interface{}{shoe.ToProperties(), sock.ToProperties()}, get(t, props, "products"))
	assert.Equal(t, []interface{}{
		[]interface{}{shoe.ToProperties()},
		[]interface{}{sock.ToProperties(), nil},
	}, get(t, props, "shipments"))
	assert.Equal(t, []interface{}{"gift", []interface{}{sock.ToProperties(), 3}}, get(t, props, "metadata"))

	bytes, err := json.Marshal(props)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"order_id": "o-1",
		"total": 79.5,
		"products": [
			{"product_id": "shoe", "price": 59.5, "tags": ["sale"]},
			{"product_id": "sock", "quantity": 3}
		],
		"shipments": [
			[{"product_id": "shoe", "price": 59.5, "tags": ["sale"]}],
			[{"product_id": "sock", "quantity": 3}, null]
		],
		"metadata": ["gift", [{"product_id": "sock", "quantity": 3}, 3]]
	}`, string(bytes))
}

func TestNilListsStayNull(t *testing.T) {
	order := NewOrderCompletedBuilder().Products(nil).Shipments(nil).Metadata(nil).Build()

	bytes, err := json.Marshal(order.ToProperties())
	require.NoError(t, err)
	assert.Equal(t, `{"products":null,"shipments":null,"metadata":null}`, string(bytes))
}

func TestAnyTypedSetter(t *testing.T) {
	universe := NewUniverse1Builder().Name(ptr("Andromeda")).Build()

	event := NewSampleEvent1Builder().SampleProperty1(universe).Build()
	assert.Same(t, universe.ToProperties(), get(t, event.ToProperties(), "Sample property 1"))

	event = NewSampleEvent1Builder().SampleProperty1([]interface{}{universe, 1}).Build()
	assert.Equal(t, []interface{}{universe.ToProperties(), 1}, get(t, event.ToProperties(), "Sample property 1"))

	event = NewSampleEvent1Builder().SampleProperty1(nil).Build()
	assert.Nil(t, get(t, event.ToProperties(), "Sample property 1"))

	page := NewPageBuilder().SampleProperty1("plain").Build()
	assert.Equal(t, "plain", get(t, page.ToProperties(), "Sample property 1"))
}

func TestNilGeneratedTypesConvertToNil(t *testing.T) {
	var universe *Universe1
	var order *OrderCompleted
	assert.Nil(t, universe.ToProperties())
	assert.Nil(t, order.ToProperties())
}
