package converter

import (
	"testing"
	"time"

	"calorie-planner/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentToProfile_LenientNumbers(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name string
		doc  entity.JSON
	}{
		{"native types", entity.JSON{"age": 30, "weight": 70.0, "height": 170, "calories": 2590.61}},
		{"json numbers", entity.JSON{"age": 30.0, "weight": 70.0, "height": 170.0, "calories": 2590.61}},
		{"strings", entity.JSON{"age": "30", "weight": "70", "height": "170", "calories": "2590.61"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DocumentToProfile(userID, tt.doc)
			require.NotNil(t, p.Age)
			assert.Equal(t, 30, *p.Age)
			assert.Equal(t, 70.0, *p.Weight)
			assert.Equal(t, 170.0, *p.Height)
			assert.Equal(t, "2590.61", p.Calories.StringFixed(2))
		})
	}
}

func TestDocumentToProfile_UnsetAndUnreadable(t *testing.T) {
	p := DocumentToProfile(uuid.New(), entity.JSON{"age": "", "weight": "heavy", "name": "Ann"})
	assert.Nil(t, p.Age)
	assert.Nil(t, p.Weight)
	assert.Nil(t, p.Height)
	assert.Nil(t, p.Calories)
	assert.Equal(t, "Ann", p.Name)
	assert.False(t, p.HasEstimationInputs())
}

func TestProfileToDocument_OnlySetFields(t *testing.T) {
	age := 41
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	doc := ProfileToDocument(&entity.UserProfile{Email: "a@example.com", Age: &age, CreatedAt: &createdAt})

	assert.Equal(t, entity.JSON{
		entity.FieldEmail:     "a@example.com",
		entity.FieldAge:       41,
		entity.FieldCreatedAt: "2024-01-02T03:04:05Z",
	}, doc)
}

func TestRecordToDocument(t *testing.T) {
	doc := RecordToDocument(&entity.ProfileRecord{
		Age: 30, Gender: "male", Weight: 70, Height: 170, Activity: "moderate",
		EstimatedCalories: decimal.NewFromFloat(2590.608),
	})

	assert.Len(t, doc, 6)
	assert.Equal(t, 2590.61, doc[entity.FieldCalories])
	assert.Equal(t, "moderate", doc[entity.FieldActivity])
}

func TestProfileToResponse_Defaults(t *testing.T) {
	res := ProfileToResponse(&entity.UserProfile{UserID: uuid.New()})
	assert.Equal(t, entity.RoleUser, res.Role)
	assert.Equal(t, entity.PlanFree, res.Plan)
	assert.Equal(t, entity.DefaultGoal, res.Goal)

	assert.Nil(t, ProfileToResponse(nil))
}
