package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"intern-genie/internal/delivery/http/middleware"
	"intern-genie/internal/domain/candidate"
	"intern-genie/internal/domain/internship"
	"intern-genie/internal/pkg/jwt"
	"intern-genie/internal/usecase"
	ucauth "intern-genie/internal/usecase/auth"
	"intern-genie/internal/usecase/insights"

	"github.com/gofiber/fiber/v3"
)

type stubAuthUC struct {
	jwt jwt.Service
}

func (s stubAuthUC) Login(_ context.Context, in ucauth.LoginInput) (candidate.Candidate, string, error) {
	if in.Email != "user@example.com" || in.Password != "password123" {
		return candidate.Candidate{}, "", ucauth.ErrInvalidCredentials
	}
	c := candidate.Candidate{ID: 42, Email: in.Email, Name: "Test User"}
	token, err := s.jwt.Generate(c.ID, c.Email)
	return c, token, err
}

func (s stubAuthUC) Refresh(_ context.Context, token string) (string, error) {
	claims, err := s.jwt.Validate(token)
	if err != nil {
		return "", usecase.ErrInvalidToken
	}
	return s.jwt.Generate(claims.CandidateID, claims.Email)
}

type stubRecommendationUC struct {
	fn func(candidateID int64, params usecase.RecommendationParams) (usecase.RecommendationResult, error)
}

func (s stubRecommendationUC) GetRecommendations(_ context.Context, candidateID int64, params usecase.RecommendationParams) (usecase.RecommendationResult, error) {
	return s.fn(candidateID, params)
}

func newTestApp(t *testing.T, recUC usecase.RecommendationUsecase) (*fiber.App, jwt.Service) {
	t.Helper()

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware().Middleware())

	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)
	authMw := middleware.NewAuthMiddleware(jwtSvc)
	protected := app.Group("", authMw.Middleware())

	NewHealthHandler("intern-genie").RegisterRoutes(app)
	NewAuthHandler(stubAuthUC{jwt: jwtSvc}).RegisterRoutes(app)
	if recUC != nil {
		NewRecommendationHandler(recUC).RegisterRoutes(protected)
	}
	NewInsightsHandler(insights.NewService(nil, nil, nil)).RegisterRoutes(app, protected)
	NewProxyHandler(nil).RegisterRoutes(app)

	return app, jwtSvc
}

func TestHealth_ReportsHealthy(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["status"] != "healthy" || body["service"] != "intern-genie" {
		t.Fatalf("unexpected health payload: %v", body)
	}
	if body["timestamp"] == "" {
		t.Fatalf("missing timestamp")
	}
}

func TestLogin_IssuesToken(t *testing.T) {
	app, jwtSvc := newTestApp(t, nil)

	b, _ := json.Marshal(map[string]string{"email": "user@example.com", "password": "password123"})
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			ID int64 `json:"id"`
		} `json:"user"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !body.Success || body.Message != "Login successful" {
		t.Fatalf("unexpected login body: %+v", body)
	}
	if body.User.ID != 42 {
		t.Fatalf("unexpected user id %d", body.User.ID)
	}

	claims, err := jwtSvc.Validate(body.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.CandidateID != 42 {
		t.Fatalf("token carries wrong candidate id %d", claims.CandidateID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	app, _ := newTestApp(t, nil)

	b, _ := json.Marshal(map[string]string{"email": "user@example.com", "password": "nope"})
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRefresh_ReissuesToken(t *testing.T) {
	app, jwtSvc := newTestApp(t, nil)

	token, err := jwtSvc.Generate(42, "user@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest("POST", "/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !body.Success || body.Message != "Token refreshed successfully" {
		t.Fatalf("unexpected refresh body: %+v", body)
	}
	if _, err := jwtSvc.Validate(body.Token); err != nil {
		t.Fatalf("refreshed token does not validate: %v", err)
	}
}

func TestRecommendations_RequiresAuth(t *testing.T) {
	app, _ := newTestApp(t, stubRecommendationUC{fn: func(int64, usecase.RecommendationParams) (usecase.RecommendationResult, error) {
		return usecase.RecommendationResult{}, nil
	}})

	resp, err := app.Test(httptest.NewRequest("GET", "/recommendations", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRecommendations_PassesQueryParams(t *testing.T) {
	var gotID int64
	var gotParams usecase.RecommendationParams

	app, jwtSvc := newTestApp(t, stubRecommendationUC{fn: func(id int64, params usecase.RecommendationParams) (usecase.RecommendationResult, error) {
		gotID = id
		gotParams = params
		return usecase.RecommendationResult{
			Recommendations: []usecase.ScoredInternship{{
				Internship:  internship.Internship{ID: 1, Title: "Backend Intern", Company: "Acme"},
				Score:       0.8,
				Explanation: "Score: 80.0% - Skills match: Go",
			}},
			Total: 1,
		}, nil
	}})

	token, err := jwtSvc.Generate(42, "user@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest("GET", "/recommendations?limit=3&use_cache=false", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if gotID != 42 {
		t.Fatalf("expected candidate 42 from token, got %d", gotID)
	}
	if gotParams.Limit != 3 || gotParams.UseCache {
		t.Fatalf("unexpected params: %+v", gotParams)
	}

	var body struct {
		Success         bool `json:"success"`
		Total           int  `json:"total"`
		Recommendations []struct {
			Internship struct {
				ID int64 `json:"id"`
			} `json:"internship"`
			Score       float64 `json:"score"`
			Explanation string  `json:"explanation"`
		} `json:"recommendations"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !body.Success || body.Total != 1 || body.Message != "Recommendations generated successfully" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Recommendations[0].Internship.ID != 1 || body.Recommendations[0].Score != 0.8 {
		t.Fatalf("unexpected recommendation payload: %+v", body.Recommendations[0])
	}
}

func TestRecommendations_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown candidate", usecase.ErrCandidateNotFound, fiber.StatusNotFound},
		{"malformed profile", usecase.ErrMalformedProfile, fiber.StatusUnprocessableEntity},
		{"malformed posting", usecase.ErrMalformedPosting, fiber.StatusUnprocessableEntity},
		{"internal", usecase.ErrInternal, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app, jwtSvc := newTestApp(t, stubRecommendationUC{fn: func(int64, usecase.RecommendationParams) (usecase.RecommendationResult, error) {
				return usecase.RecommendationResult{}, tc.err
			}})

			token, err := jwtSvc.Generate(42, "user@example.com")
			if err != nil {
				t.Fatalf("generate: %v", err)
			}

			req := httptest.NewRequest("GET", "/recommendations", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request error: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestRecommendations_BadQueryFallsBackToDefaults(t *testing.T) {
	var gotParams usecase.RecommendationParams

	app, jwtSvc := newTestApp(t, stubRecommendationUC{fn: func(_ int64, params usecase.RecommendationParams) (usecase.RecommendationResult, error) {
		gotParams = params
		return usecase.RecommendationResult{}, nil
	}})

	token, err := jwtSvc.Generate(42, "user@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest("GET", "/recommendations?limit=abc&use_cache=banana", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if gotParams.Limit != usecase.DefaultRecommendationLimit || !gotParams.UseCache {
		t.Fatalf("expected default params, got %+v", gotParams)
	}
}

func TestTrendingSkills_PublicAndLimited(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/trending-skills?limit=2", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
		Skills  []struct {
			Skill string `json:"skill"`
		} `json:"skills"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !body.Success || len(body.Skills) != 2 {
		t.Fatalf("expected 2 skills, got %+v", body)
	}
}

func TestUserInsights_RequiresAuth(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/user-insights", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestProxy_NoUpstreamIsBadGateway(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/proxy/some/path", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
}
