package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SSm0k9y/coffee-break/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.Order{}, &model.OrderItem{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) model.Product {
	t.Helper()
	p := model.Product{Name: name, Price: price, Image: "images/" + name + ".png"}
	require.NoError(t, db.Create(&p).Error)
	return p
}

type sentMail struct{ to, subject, body string }

// recordingEmail captures sends instead of talking SMTP.
type recordingEmail struct{ sent []sentMail }

func (m *recordingEmail) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}
