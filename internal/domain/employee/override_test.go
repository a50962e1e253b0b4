package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestResolveEffective_NilOverride(t *testing.T) {
	base := Employee{ID: 1, DepartmentID: int64Ptr(4), IsApprover: true}

	eff := ResolveEffective(base, nil)

	assert.Equal(t, base, eff)
}

func TestResolveEffective_PatchesOnlySetFields(t *testing.T) {
	base := Employee{
		ID:           1,
		DepartmentID: int64Ptr(4),
		ManagerID:    int64Ptr(9),
		IsAdmin:      false,
		IsApprover:   true,
	}
	ovr := &Override{
		EmployeeID:   1,
		DepartmentID: int64Ptr(7),
		IsAdmin:      boolPtr(true),
	}

	eff := ResolveEffective(base, ovr)

	assert.Equal(t, int64(7), *eff.DepartmentID)
	assert.Equal(t, int64(9), *eff.ManagerID, "unset override field keeps base value")
	assert.True(t, eff.IsAdmin)
	assert.True(t, eff.IsApprover)
}

func TestResolveEffective_CanDemote(t *testing.T) {
	base := Employee{ID: 1, IsApprover: true}
	ovr := &Override{EmployeeID: 1, IsApprover: boolPtr(false)}

	eff := ResolveEffective(base, ovr)

	assert.False(t, eff.IsApprover)
}

func TestOverrideHidden(t *testing.T) {
	var nilOvr *Override
	assert.False(t, nilOvr.Hidden())
	assert.False(t, (&Override{}).Hidden())
	assert.False(t, (&Override{IsHidden: boolPtr(false)}).Hidden())
	assert.True(t, (&Override{IsHidden: boolPtr(true)}).Hidden())
}

func TestOverrideIsEmpty(t *testing.T) {
	assert.True(t, Override{EmployeeID: 3}.IsEmpty())
	assert.False(t, Override{EmployeeID: 3, ManagerID: int64Ptr(1)}.IsEmpty())
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"first and last", "Maria Papadopoulou", "MP"},
		{"middle names ignored", "Juan Carlos de la Cruz", "JC"},
		{"single token", "admin", "AD"},
		{"single rune", "X", "X"},
		{"lowercase input", "nikos v", "NV"},
		{"empty", "", ""},
		{"surrounding space", "  Ana Lind  ", "AL"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Initials(tc.in))
		})
	}
}
