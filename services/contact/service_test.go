package contact

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cerberus/models"
	"cerberus/services/notification"

	"go.uber.org/zap/zaptest"
)

type fakeRepo struct {
	rows []models.ContactSubmission
	err  error
}

func (r *fakeRepo) Create(_ context.Context, sub *models.ContactSubmission) error {
	if r.err != nil {
		return r.err
	}
	sub.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, *sub)
	return nil
}

type fakeMailer struct {
	sent []notification.Email
	err  error
}

func (m *fakeMailer) Send(_ context.Context, e notification.Email) error {
	m.sent = append(m.sent, e)
	return m.err
}

func newTestService(t *testing.T, repo *fakeRepo, mailer *fakeMailer, strict bool) *Service {
	return NewService(repo, mailer, zaptest.NewLogger(t), Options{NotifyTo: "owner@studio.com", StrictNotify: strict})
}

func TestSubmit_MinimalPayload(t *testing.T) {
	repo, mailer := &fakeRepo{}, &fakeMailer{}
	svc := newTestService(t, repo, mailer, false)

	res, err := svc.Submit(context.Background(), models.ContactPayload{Name: "Jo", Email: "jo@x.com"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Stored || !res.Notified || res.ID != 1 {
		t.Errorf("result: %+v", res)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("rows: got %d, want 1", len(repo.rows))
	}
	row := repo.rows[0]
	if row.ProjectType != "" || row.PreferredDate != "" || row.SongLink != "" || row.Notes != "" || row.Estimate != "" {
		t.Errorf("optional fields should be empty: %+v", row)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("emails: got %d, want 1", len(mailer.sent))
	}
	if mailer.sent[0].To[0] != "owner@studio.com" {
		t.Errorf("recipient: got %v", mailer.sent[0].To)
	}
}

func TestSubmit_MissingFieldsRejectedBeforeSideEffects(t *testing.T) {
	cases := []struct {
		name    string
		payload models.ContactPayload
		missing []string
	}{
		{"both empty", models.ContactPayload{}, []string{"name", "email"}},
		{"blank name", models.ContactPayload{Name: "   ", Email: "jo@x.com"}, []string{"name"}},
		{"whitespace email", models.ContactPayload{Name: "Jo", Email: "\t\n"}, []string{"email"}},
		{"no email", models.ContactPayload{Name: "Jo", Notes: "hi"}, []string{"email"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mailer := &fakeRepo{}, &fakeMailer{}
			_, err := newTestService(t, repo, mailer, false).Submit(context.Background(), tc.payload)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(verr.Missing) != len(tc.missing) {
				t.Fatalf("missing: got %v, want %v", verr.Missing, tc.missing)
			}
			for i := range tc.missing {
				if verr.Missing[i] != tc.missing[i] {
					t.Errorf("missing[%d]: got %q, want %q", i, verr.Missing[i], tc.missing[i])
				}
			}
			if len(repo.rows) != 0 || len(mailer.sent) != 0 {
				t.Error("side effects performed for invalid payload")
			}
		})
	}
}

func TestSubmit_PersistFailure(t *testing.T) {
	repo, mailer := &fakeRepo{err: errors.New("disk full")}, &fakeMailer{}
	res, err := newTestService(t, repo, mailer, false).Submit(context.Background(), models.ContactPayload{Name: "Jo", Email: "jo@x.com"})

	if !errors.Is(err, ErrPersist) {
		t.Fatalf("expected ErrPersist, got %v", err)
	}
	if res != nil {
		t.Errorf("expected no result, got %+v", res)
	}
	if len(mailer.sent) != 0 {
		t.Error("email sent although the row was not stored")
	}
}

func TestSubmit_NotifyFailureKeepsRow(t *testing.T) {
	repo, mailer := &fakeRepo{}, &fakeMailer{err: errors.New("smtp down")}
	res, err := newTestService(t, repo, mailer, false).Submit(context.Background(), models.ContactPayload{Name: "Jo", Email: "jo@x.com"})

	if err != nil {
		t.Fatalf("lenient policy should succeed, got %v", err)
	}
	if !res.Stored || res.Notified {
		t.Errorf("result: %+v", res)
	}
	if len(repo.rows) != 1 {
		t.Errorf("rows: got %d, want 1", len(repo.rows))
	}
}

func TestSubmit_StrictNotifyFailure(t *testing.T) {
	repo, mailer := &fakeRepo{}, &fakeMailer{err: errors.New("smtp down")}
	res, err := newTestService(t, repo, mailer, true).Submit(context.Background(), models.ContactPayload{Name: "Jo", Email: "jo@x.com"})

	if !errors.Is(err, ErrNotify) {
		t.Fatalf("expected ErrNotify, got %v", err)
	}
	if res == nil || !res.Stored || res.Notified {
		t.Errorf("result: %+v", res)
	}
	if len(repo.rows) != 1 {
		t.Errorf("row should stay stored, got %d rows", len(repo.rows))
	}
}

func TestSubmit_KeepsAngleBracketText(t *testing.T) {
	repo, mailer := &fakeRepo{}, &fakeMailer{}
	notes := "love it <3 and keep the <chorus> part, tempo < 120"
	estimate := "Package: Standard ($500)\n\nCredit required: <tag us>"
	_, err := newTestService(t, repo, mailer, false).Submit(context.Background(), models.ContactPayload{
		Name:     "  <Jo>  ",
		Email:    "jo@x.com",
		Notes:    notes,
		Estimate: estimate,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	row := repo.rows[0]
	if row.Name != "<Jo>" {
		t.Errorf("name: got %q", row.Name)
	}
	if row.Notes != notes {
		t.Errorf("notes: got %q, want %q", row.Notes, notes)
	}
	if row.Estimate != estimate {
		t.Errorf("estimate must be stored verbatim, got %q", row.Estimate)
	}
	if !strings.Contains(mailer.sent[0].Body, "Notes:\n"+notes) {
		t.Errorf("email body lost notes:\n%s", mailer.sent[0].Body)
	}
}

func TestSubmit_NoDeduplication(t *testing.T) {
	repo, mailer := &fakeRepo{}, &fakeMailer{}
	svc := newTestService(t, repo, mailer, false)
	p := models.ContactPayload{Name: "Jo", Email: "jo@x.com"}
	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(context.Background(), p); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if len(repo.rows) != 3 || len(mailer.sent) != 3 {
		t.Errorf("got %d rows and %d emails, want 3 and 3", len(repo.rows), len(mailer.sent))
	}
}
