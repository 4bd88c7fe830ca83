package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateStudentRequest_ToModel(t *testing.T) {
	req := CreateStudentRequest{
		Name:      "  Ana Souza  ",
		BirthDate: "2012-05-01",
		Phone:     strPtr("  "),
		CordLevel: strPtr("verde"),
		IsMinor:   true,
	}

	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", m.StudentName)
	assert.Equal(t, 2012, time.Time(m.StudentBirthDate).Year())
	assert.Nil(t, m.StudentPhone, "blank optional collapses to NULL")
	require.NotNil(t, m.StudentCordLevel)
	assert.Equal(t, "verde", *m.StudentCordLevel)
	assert.True(t, m.StudentIsActive, "new students start active")
	assert.True(t, m.StudentIsMinor)
}

func TestCreateStudentRequest_BadBirthDate(t *testing.T) {
	req := CreateStudentRequest{Name: "Ana", BirthDate: "01/05/2012"}
	_, err := req.ToModel()
	assert.Error(t, err)
}

// Pointer fields are tri-state: absent leaves the column alone, an empty
// string nulls it, a value sets it.
func TestUpdateStudentRequest_Updates(t *testing.T) {
	req := UpdateStudentRequest{
		Name:  strPtr("  Bruno  "),
		Phone: strPtr(""),
	}

	updates, err := req.Updates()
	require.NoError(t, err)

	assert.Equal(t, "Bruno", updates["student_name"])

	phone, touched := updates["student_phone"]
	assert.True(t, touched)
	assert.Nil(t, phone)

	_, touched = updates["student_email"]
	assert.False(t, touched, "absent field must stay untouched")

	assert.Len(t, updates, 2)
}

func TestUpdateStudentRequest_EmptyBody(t *testing.T) {
	updates, err := UpdateStudentRequest{}.Updates()
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestUpdateStudentRequest_BadBirthDate(t *testing.T) {
	req := UpdateStudentRequest{BirthDate: strPtr("yesterday")}
	_, err := req.Updates()
	assert.Error(t, err)
}
