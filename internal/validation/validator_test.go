package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Email(t *testing.T) {
	v := New()

	res := v.Validate(
		map[string]any{"email": "bad"},
		map[string][]Rule{"email": {{Name: "email"}}},
	)
	assert.False(t, res.IsValid)
	require.Len(t, res.Errors["email"], 1)

	res = v.Validate(
		map[string]any{"email": "a@b.com"},
		map[string][]Rule{"email": {{Name: "email"}}},
	)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	v := New()

	res := v.Validate(
		map[string]any{"password": "abc"},
		map[string][]Rule{"password": {
			{Name: "required"},
			{Name: "minLength", Params: []any{6}},
			{Name: "pattern", Params: []any{`[0-9]`}},
		}},
	)

	assert.False(t, res.IsValid)
	assert.Len(t, res.Errors["password"], 2)
}

func TestValidate_MessageSubstitution(t *testing.T) {
	v := New()

	res := v.Validate(
		map[string]any{"password": "abc"},
		map[string][]Rule{"password": {{Name: "minLength", Params: []any{6}}}},
	)
	require.Len(t, res.Errors["password"], 1)
	assert.Equal(t, "password must be at least 6 characters", res.Errors["password"][0])

	res = v.Validate(
		map[string]any{"age": "7"},
		map[string][]Rule{"age": {{Name: "min", Params: []any{18}, Message: "You must be at least {0}"}}},
	)
	require.Len(t, res.Errors["age"], 1)
	assert.Equal(t, "You must be at least 18", res.Errors["age"][0])
}

func TestValidate_Match(t *testing.T) {
	v := New()

	res := v.Validate(
		map[string]any{"password": "secret1", "confirm": "secret2"},
		map[string][]Rule{"confirm": {{Name: "match", Params: []any{"password"}}}},
	)
	assert.False(t, res.IsValid)

	res = v.Validate(
		map[string]any{"password": "secret1", "confirm": "secret1"},
		map[string][]Rule{"confirm": {{Name: "match", Params: []any{"password"}}}},
	)
	assert.True(t, res.IsValid)
}

func TestValidate_UnknownRuleIgnored(t *testing.T) {
	v := New()

	res := v.Validate(
		map[string]any{"name": "ok"},
		map[string][]Rule{"name": {{Name: "definitely_not_a_rule"}}},
	)
	assert.True(t, res.IsValid, "unknown rules warn, they do not fail")
}

func TestValidate_NumericRules(t *testing.T) {
	v := New()

	rules := map[string][]Rule{"amount": {
		{Name: "number"},
		{Name: "min", Params: []any{1}},
		{Name: "max", Params: []any{1000}},
	}}

	assert.True(t, v.Validate(map[string]any{"amount": 500}, rules).IsValid)
	assert.True(t, v.Validate(map[string]any{"amount": "500"}, rules).IsValid)
	assert.False(t, v.Validate(map[string]any{"amount": "lots"}, rules).IsValid)
	assert.False(t, v.Validate(map[string]any{"amount": 2000}, rules).IsValid)
}

func TestValidateField(t *testing.T) {
	v := New()

	errs := v.ValidateField("", []Rule{{Name: "required"}})
	require.Len(t, errs, 1)

	errs = v.ValidateField("hello", []Rule{{Name: "required"}, {Name: "maxLength", Params: []any{10}}})
	assert.Empty(t, errs)
}

func TestValidate_PhoneAndURL(t *testing.T) {
	v := New()

	assert.True(t, v.Validate(
		map[string]any{"phone": "+91 98765 43210"},
		map[string][]Rule{"phone": {{Name: "phone"}}},
	).IsValid)

	assert.False(t, v.Validate(
		map[string]any{"phone": "abc"},
		map[string][]Rule{"phone": {{Name: "phone"}}},
	).IsValid)

	assert.True(t, v.Validate(
		map[string]any{"site": "https://mindspace.care"},
		map[string][]Rule{"site": {{Name: "url"}}},
	).IsValid)

	assert.False(t, v.Validate(
		map[string]any{"site": "not a url"},
		map[string][]Rule{"site": {{Name: "url"}}},
	).IsValid)
}
