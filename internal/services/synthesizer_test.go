package services

import (
	"testing"

	"github.com/lib/pq"
	"github.com/modx/ai-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSynthesizeProject(t *testing.T) {
	row := models.PendingProject{
		ID:             7,
		Title:          "Chat App",
		Description:    "Realtime messaging",
		RequiredSkills: pq.StringArray{"python"},
		TechStack:      "Django, Postgres",
		LeaderName:     "Ana",
	}

	doc := SynthesizeProject(row)

	assert.Equal(t, "project_7", doc.DocID)
	assert.Equal(t, DocTypeProject, doc.DocType())
	assert.Contains(t, doc.Text, "Chat App")
	assert.Contains(t, doc.Text, "Ana")
	assert.Contains(t, doc.Text, "python")
	assert.Equal(t,
		"Project: Chat App. Led by: Ana. Description: Realtime messaging. Skills: python. Tech Stack: Django, Postgres.",
		doc.Text)
}

func TestSynthesizeProjectDeterministic(t *testing.T) {
	row := models.PendingProject{
		ID:             3,
		Title:          "Data Pipeline",
		RequiredSkills: pq.StringArray{"go", "sql"},
		LeaderName:     "Kim",
	}

	first := SynthesizeProject(row)
	second := SynthesizeProject(row)

	assert.Equal(t, first.DocID, second.DocID)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.Metadata, second.Metadata)
}

func TestSynthesizeProjectNilSkills(t *testing.T) {
	row := models.PendingProject{ID: 1, Title: "Solo", LeaderName: "Bo"}

	doc := SynthesizeProject(row)

	// nil数组渲染为空串而不是报错
	assert.Contains(t, doc.Text, "Skills: .")
}

func TestSynthesizeUser(t *testing.T) {
	row := models.PendingUser{
		ID:       3,
		FullName: "Li Wei",
		Roles:    pq.StringArray{"backend", "mentor"},
		Interest: "distributed systems",
	}

	doc := SynthesizeUser(row)

	assert.Equal(t, "user_3", doc.DocID)
	assert.Equal(t, DocTypeUser, doc.DocType())
	assert.Equal(t, "User: Li Wei. Roles: backend, mentor. Interests: distributed systems.", doc.Text)
}

func TestDocIDFormat(t *testing.T) {
	assert.Equal(t, "project_42", ProjectDocID(42))
	assert.Equal(t, "user_42", UserDocID(42))
}
