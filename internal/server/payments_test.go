package server

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"

	"github.com/contractwise/backend/internal/common"
	"github.com/contractwise/backend/internal/entity"
	"github.com/contractwise/backend/internal/payments"
)

type fakeUsers struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUsers) UpsertByGoogleID(ctx context.Context, u *entity.User) (*entity.User, error) {
	return u, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsers) SetPremium(ctx context.Context, id uuid.UUID, premium bool) (*entity.User, error) {
	u, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.IsPremium = premium
	return u, nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendPremiumConfirmation(ctx context.Context, email, name string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, email)
	return nil
}

const webhookSecret = "whsec_test"

func paymentsFixture(user *entity.User, mailer *fakeMailer) (*gin.Engine, *fakeUsers) {
	users := &fakeUsers{users: map[uuid.UUID]*entity.User{}}
	if user != nil {
		users.users[user.ID] = user
	}
	svc := payments.NewService(common.StripeConfig{WebhookSecret: webhookSecret}, "http://client", users, mailer, nil)
	h := NewPaymentsHandler(svc, nil)

	r := gin.New()
	r.POST("/payments/webhook", h.Webhook)
	r.GET("/payments/membership-status", func(c *gin.Context) {
		if user != nil {
			c.Set("user", user)
		}
		h.MembershipStatus(c)
	})
	return r, users
}

// signPayload produces a Stripe-Signature header for a raw payload.
func signPayload(payload []byte, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestWebhookRequiresSignatureHeader(t *testing.T) {
	r, _ := paymentsFixture(nil, &fakeMailer{})

	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	r, _ := paymentsFixture(nil, &fakeMailer{})

	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBufferString("{}"))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400; body %s", w.Code, w.Body.String())
	}
}

func TestWebhookCompletedCheckoutUpgradesUser(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "u@example.com", DisplayName: "U"}
	mailer := &fakeMailer{}
	r, users := paymentsFixture(user, mailer)

	payload := []byte(fmt.Sprintf(
		`{"id":"evt_1","type":"checkout.session.completed","api_version":%q,"data":{"object":{"id":"cs_1","client_reference_id":%q}}}`,
		stripe.APIVersion, user.ID.String(),
	))
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBuffer(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, time.Now()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}
	if !users.users[user.ID].IsPremium {
		t.Error("user not upgraded to premium")
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != user.Email {
		t.Errorf("confirmation emails = %v", mailer.sent)
	}
}

func TestWebhookIgnoresOtherEventTypes(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "u@example.com"}
	r, users := paymentsFixture(user, &fakeMailer{})

	payload := []byte(fmt.Sprintf(
		`{"id":"evt_2","type":"invoice.paid","api_version":%q,"data":{"object":{}}}`,
		stripe.APIVersion,
	))
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBuffer(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, time.Now()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}
	if users.users[user.ID].IsPremium {
		t.Error("unrelated event upgraded the user")
	}
}

func TestWebhookEmailFailureStillSucceeds(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "u@example.com"}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	r, users := paymentsFixture(user, mailer)

	payload := []byte(fmt.Sprintf(
		`{"id":"evt_3","type":"checkout.session.completed","api_version":%q,"data":{"object":{"id":"cs_3","client_reference_id":%q}}}`,
		stripe.APIVersion, user.ID.String(),
	))
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBuffer(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, time.Now()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, email failure must not fail the webhook", w.Code)
	}
	if !users.users[user.ID].IsPremium {
		t.Error("user not upgraded to premium")
	}
}

func TestMembershipStatus(t *testing.T) {
	tests := []struct {
		name    string
		premium bool
		want    string
	}{
		{"free user", false, "inactive"},
		{"premium user", true, "active"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &entity.User{ID: uuid.New(), IsPremium: tt.premium}
			r, _ := paymentsFixture(user, &fakeMailer{})

			req := httptest.NewRequest(http.MethodGet, "/payments/membership-status", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if !bytes.Contains(w.Body.Bytes(), []byte(tt.want)) {
				t.Errorf("body = %s, want %q", w.Body.String(), tt.want)
			}
		})
	}
}
