package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert.Empty(t, Decode(nil))
	assert.Empty(t, Decode("not a cart"))
	assert.Empty(t, Decode(map[string]string{"1": "2"}))

	c := Decode(map[string]int{"3": 2})
	assert.Equal(t, 2, c["3"])
}

func TestAdd(t *testing.T) {
	c := Cart{}
	c.Add(5)
	assert.Equal(t, 1, c["5"])

	c.Add(5)
	assert.Equal(t, 2, c["5"])
}

func TestUpdateIncrease(t *testing.T) {
	c := Cart{"5": 1}
	c.Update(5, "increase")
	assert.Equal(t, 2, c["5"])
}

func TestUpdateDecreaseRemovesAtZero(t *testing.T) {
	c := Cart{"5": 1}
	c.Update(5, "decrease")
	assert.NotContains(t, c, "5")
}

func TestUpdateAbsentProductIsNoop(t *testing.T) {
	c := Cart{"5": 1}
	c.Update(9, "increase")
	assert.Equal(t, Cart{"5": 1}, c)
}

func TestUpdateUnknownActionIsNoop(t *testing.T) {
	c := Cart{"5": 2}
	c.Update(5, "obliterate")
	assert.Equal(t, 2, c["5"])
}

func TestRemove(t *testing.T) {
	c := Cart{"5": 2, "7": 1}
	c.Remove(5)
	assert.Equal(t, Cart{"7": 1}, c)

	c.Remove(42) // absent: no-op
	assert.Equal(t, Cart{"7": 1}, c)
}

func TestEntriesSortedAndFiltered(t *testing.T) {
	c := Cart{"10": 1, "2": 3, "junk": 5}
	got := c.Entries()
	assert.Equal(t, []Entry{{ProductID: 2, Quantity: 3}, {ProductID: 10, Quantity: 1}}, got)
}
