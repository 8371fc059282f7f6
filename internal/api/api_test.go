package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"societyledger/internal/document"
	"societyledger/internal/models"
	"societyledger/internal/service"
	"societyledger/internal/storage/sqlite"
)

func setupTestServer(t *testing.T) (*httptest.Server, *service.Service) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	svc := service.New(store)
	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	society := document.Society{
		Name:           "Tulsi Apartment",
		RegistrationNo: "123/TULSI/APT",
		Address:        "Sector 4, City Center",
	}
	server := httptest.NewServer(NewRouter(svc, society, 5000))
	t.Cleanup(server.Close)

	return server, svc
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
}

func TestMemberEndpoints(t *testing.T) {
	server, _ := setupTestServer(t)

	resp := postJSON(t, server.URL+"/api/members", map[string]any{
		"name":       "A. Rao",
		"flatNumber": "101",
		"mobile":     "9876500000",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var member models.Member
	decodeBody(t, resp, &member)
	if member.ID == "" {
		t.Error("expected generated member id")
	}

	listResp, err := http.Get(server.URL + "/api/members")
	if err != nil {
		t.Fatalf("GET members failed: %v", err)
	}
	var listing struct {
		Members []models.Member `json:"members"`
		Total   int             `json:"total"`
	}
	decodeBody(t, listResp, &listing)
	if listing.Total != 1 || len(listing.Members) != 1 {
		t.Fatalf("expected 1 member, got %+v", listing)
	}
	if listing.Members[0].Name != "A. Rao" {
		t.Errorf("member name = %q, want A. Rao", listing.Members[0].Name)
	}
}

func TestMemberValidationError(t *testing.T) {
	server, _ := setupTestServer(t)

	resp := postJSON(t, server.URL+"/api/members", map[string]any{"mobile": "123"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, resp, &body)
	if body.Fields["name"] == "" {
		t.Errorf("expected a field message for name, got %+v", body)
	}
	if body.Fields["flatNumber"] == "" {
		t.Errorf("expected a field message for flatNumber, got %+v", body)
	}
}

func TestPaymentAndSummaryEndpoints(t *testing.T) {
	server, _ := setupTestServer(t)

	var member models.Member
	decodeBody(t, postJSON(t, server.URL+"/api/members", map[string]any{
		"name": "A. Rao", "flatNumber": "101",
	}), &member)

	resp := postJSON(t, server.URL+"/api/payments", map[string]any{
		"memberId": member.ID,
		"month":    "2024-03",
		"amount":   2500,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var payment models.Payment
	decodeBody(t, resp, &payment)
	if payment.MemberName != "A. Rao" {
		t.Errorf("expected name snapshot, got %q", payment.MemberName)
	}

	expResp := postJSON(t, server.URL+"/api/expenses", map[string]any{
		"title":    "Pump Repair",
		"amount":   1800,
		"category": "Repair",
	})
	if expResp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", expResp.StatusCode)
	}
	expResp.Body.Close()

	sumResp, err := http.Get(server.URL + "/api/summary")
	if err != nil {
		t.Fatalf("GET summary failed: %v", err)
	}
	var summary service.Summary
	decodeBody(t, sumResp, &summary)
	if summary.TotalCollected != 2500 || summary.TotalExpenses != 1800 || summary.Balance != 700 {
		t.Errorf("summary = %+v, want 2500/1800/700", summary)
	}
	if len(summary.ExpenseBreakdown) != 1 || summary.ExpenseBreakdown[0].Name != "Repair" {
		t.Errorf("unexpected breakdown: %+v", summary.ExpenseBreakdown)
	}

	// Filter payments through the secondary index.
	byMember, err := http.Get(fmt.Sprintf("%s/api/payments?member_id=%s", server.URL, member.ID))
	if err != nil {
		t.Fatalf("GET payments by member failed: %v", err)
	}
	var filtered struct {
		Payments []models.Payment `json:"payments"`
		Total    int              `json:"total"`
	}
	decodeBody(t, byMember, &filtered)
	if filtered.Total != 1 {
		t.Errorf("expected 1 payment for member, got %+v", filtered)
	}

	none, err := http.Get(server.URL + "/api/payments?member_id=no-such-member")
	if err != nil {
		t.Fatalf("GET payments by unknown member failed: %v", err)
	}
	decodeBody(t, none, &filtered)
	if filtered.Total != 0 {
		t.Errorf("expected 0 payments for unknown member, got %+v", filtered)
	}
}

func TestReceiptEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)

	var member models.Member
	decodeBody(t, postJSON(t, server.URL+"/api/members", map[string]any{
		"name": "A. Rao", "flatNumber": "101",
	}), &member)

	var payment models.Payment
	decodeBody(t, postJSON(t, server.URL+"/api/payments", map[string]any{
		"memberId": member.ID, "month": "2024-03", "amount": 2500,
	}), &payment)

	resp, err := http.Get(server.URL + "/api/payments/" + payment.ID + "/receipt")
	if err != nil {
		t.Fatalf("GET receipt failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("expected text/plain, got %q", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	text := string(body)
	if !strings.Contains(text, "MAINTENANCE RECEIPT") || !strings.Contains(text, "A. Rao") {
		t.Errorf("unexpected receipt body:\n%s", text)
	}

	missing, err := http.Get(server.URL + "/api/payments/nope/receipt")
	if err != nil {
		t.Fatalf("GET missing receipt failed: %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", missing.StatusCode)
	}
}

func TestNoticeEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)

	var member models.Member
	decodeBody(t, postJSON(t, server.URL+"/api/members", map[string]any{
		"name": "A. Rao", "flatNumber": "101", "mobile": "9876500000",
	}), &member)

	resp, err := http.Get(server.URL + "/api/members/" + member.ID + "/notice")
	if err != nil {
		t.Fatalf("GET notice failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	text := string(body)
	if !strings.Contains(text, "FORMAL DEMAND NOTICE") || !strings.Contains(text, "Flat No: 101") {
		t.Errorf("unexpected notice body:\n%s", text)
	}
	// Fixed placeholder dues from the test configuration.
	if !strings.Contains(text, "Rs. 5000") {
		t.Errorf("expected configured dues in notice:\n%s", text)
	}

	missing, err := http.Get(server.URL + "/api/members/nope/notice")
	if err != nil {
		t.Fatalf("GET missing notice failed: %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", missing.StatusCode)
	}
}

func TestInvalidJSONBody(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, err := http.Post(server.URL+"/api/members", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}
