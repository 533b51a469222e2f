package models

import (
	stdjson "encoding/json"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Number ID `json:"number"`
		Text   ID `json:"text"`
		Null   ID `json:"null"`
	}

	err := json.Unmarshal([]byte(`{"number": 12, "text": "p1", "null": null}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, ID("12"), payload.Number)
	assert.Equal(t, ID("p1"), payload.Text)
	assert.True(t, payload.Null.IsZero())
}

func TestID_UnmarshalJSONRejectsObjects(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{"id": 1}`), &id))
}

func TestID_MarshalJSONKeepsNumbersNumeric(t *testing.T) {
	body, err := json.Marshal(map[string]ID{"patient_id": "7", "doctor_id": "d-1"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"patient_id": 7, "doctor_id": "d-1"}`, string(body))

	tests := []struct {
		id   ID
		want string
	}{
		{"007", `"007"`},
		{"+5", `"+5"`},
		{"1e3", `"1e3"`},
		{"-4", `-4`},
		{"0", `0`},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			body, err := json.Marshal(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
			assert.True(t, stdjson.Valid(body))
		})
	}
}

func TestID_UnmarshalJSONNormalizesNumbers(t *testing.T) {
	tests := []struct {
		raw  string
		want ID
	}{
		{`1e3`, "1000"},
		{`7.0`, "7"},
		{`-0`, "0"},
		{`2.5`, "2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &id))
			assert.Equal(t, tt.want, id)

			body, err := json.Marshal(id)
			require.NoError(t, err)
			assert.True(t, stdjson.Valid(body))
		})
	}
}

func TestIdentity_MarshalsUnusualIDs(t *testing.T) {
	body, err := json.Marshal(Identity{Profile: Profile{ID: "+5", Username: "plus"}, Role: RolePatient})
	require.NoError(t, err)

	var decoded Identity
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, ID("+5"), decoded.ID)
}

func TestDoctor_DecodesAsTaggedVariant(t *testing.T) {
	var doctor Doctor
	err := json.Unmarshal([]byte(`{"id": 3, "name": "Dr. Who", "username": "who", "email": "who@example.com", "phone": null, "specialization": "Cardiology", "created_at": "2024-03-07T10:00:00"}`), &doctor)
	require.NoError(t, err)

	assert.Equal(t, ID("3"), doctor.EntityID())
	assert.Equal(t, RoleDoctor, doctor.Role())
	assert.Equal(t, "Cardiology", doctor.Specialization)
	assert.Equal(t, Identity{Profile: doctor.Profile, Role: RoleDoctor}, doctor.Identity())
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole(" Doctor ")
	assert.True(t, ok)
	assert.Equal(t, RoleDoctor, role)

	_, ok = ParseRole("nurse")
	assert.False(t, ok)
}
