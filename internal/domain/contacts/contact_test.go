package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContact(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		c, err := NewContact("", "  Ada ", "Lovelace", "")
		require.NoError(t, err)

		assert.Equal(t, ContactTypeCustomer, c.Type)
		assert.Equal(t, ContactStatusActive, c.Status)
		assert.Equal(t, DefaultCountry, c.Country)
		assert.Equal(t, "Ada", c.FirstName)
		assert.Empty(t, c.Tags)
		assert.NotNil(t, c.CustomFields)
		assert.Equal(t, 1, c.Version)
		require.Len(t, c.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeContactCreated, c.GetDomainEvents()[0].EventType())
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := NewContact(ContactTypeVendor, "", " ", "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewContact("PARTNER", "", "", "Acme")
		assert.Error(t, err)
	})
}

func TestContact_Tags(t *testing.T) {
	c, err := NewContact(ContactTypeVendor, "", "", "Acme Rebar")
	require.NoError(t, err)

	c.AddTag("rebar").AddTag(" Rebar ").AddTag("").AddTag("steel")
	assert.Equal(t, []string{"rebar", "steel"}, []string(c.Tags))
	assert.True(t, c.HasTag("STEEL"))

	c.RemoveTag("REBAR")
	assert.Equal(t, []string{"steel"}, []string(c.Tags))
	assert.True(t, c.IsVendor())
}

func TestContact_UpdateStatus(t *testing.T) {
	c, err := NewContact(ContactTypeCustomer, "", "", "Metro Builders")
	require.NoError(t, err)

	require.NoError(t, c.UpdateStatus(ContactStatusInactive))
	assert.Equal(t, ContactStatusInactive, c.Status)
	assert.Error(t, c.UpdateStatus("ARCHIVED"))
}

func TestContact_DisplayNameAndRename(t *testing.T) {
	c, err := NewContact(ContactTypeEngineer, "Grace", "Hopper", "")
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", c.DisplayName())

	assert.Error(t, c.Rename("", "", ""))
	assert.Equal(t, "Grace", c.FirstName)

	require.NoError(t, c.Rename("", "", "Hopper Engineering"))
	assert.Equal(t, "Hopper Engineering", c.DisplayName())
}
