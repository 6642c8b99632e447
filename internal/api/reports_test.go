package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestReportsRequireAdmin(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app, "Admin", "admin@example.com", "SenhaForte1")
	userToken, _ := registerTestUser(t, app, "Comum", "comum@example.com", "SenhaForte1")

	response := performJSON(t, app, http.MethodGet, "/api/relatorios/diocese", userToken, nil)
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 for non-admin, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestDioceseReportGroupsCounts(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "Admin", "admin@example.com", "SenhaForte1")

	createTestCommunity(t, app, token, fiber.Map{"diocese": "Diocese A"})
	createTestCommunity(t, app, token, fiber.Map{"diocese": "Diocese A"})
	createTestCommunity(t, app, token, fiber.Map{"diocese": "Diocese B"})

	response := performJSON(t, app, http.MethodGet, "/api/relatorios/diocese", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var totals []map[string]any
	decodeJSON(t, response, &totals)
	if len(totals) != 2 {
		t.Fatalf("expected 2 diocese groups, got %d", len(totals))
	}
	if totals[0]["diocese"] != "Diocese A" || totals[0]["total"] != float64(2) {
		t.Fatalf("expected Diocese A with total 2 first, got %v", totals[0])
	}
}

func TestEtapaReportUsesJoinedNames(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "Admin", "admin@example.com", "SenhaForte1")

	createTestCommunity(t, app, token, fiber.Map{"diocese": "A", "etapa_id": 1})
	createTestCommunity(t, app, token, fiber.Map{"diocese": "B", "etapa_id": 1})

	response := performJSON(t, app, http.MethodGet, "/api/relatorios/etapa", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var totals []map[string]any
	decodeJSON(t, response, &totals)
	if len(totals) != 1 {
		t.Fatalf("expected a single etapa group, got %d", len(totals))
	}
	if totals[0]["etapa"] != "Pré-fundação" || totals[0]["total"] != float64(2) {
		t.Fatalf("expected Pré-fundação with total 2, got %v", totals[0])
	}
}

func TestCarismaReportIncludesZeroTotals(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "Admin", "admin@example.com", "SenhaForte1")

	createTestCommunity(t, app, token, fiber.Map{
		"diocese":  "A",
		"carismas": []fiber.Map{{"carisma_id": 2}},
	})
	createTestCommunity(t, app, token, fiber.Map{
		"diocese":  "B",
		"carismas": []fiber.Map{{"carisma_id": 2}},
	})

	response := performJSON(t, app, http.MethodGet, "/api/relatorios/carisma", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var totals []map[string]any
	decodeJSON(t, response, &totals)
	if len(totals) != 5 {
		t.Fatalf("expected every seeded carisma reported, got %d entries", len(totals))
	}

	byID := make(map[float64]map[string]any, len(totals))
	for _, entry := range totals {
		byID[entry["carisma_id"].(float64)] = entry
	}
	if byID[2]["total"] != float64(2) {
		t.Fatalf("expected carisma 2 total 2, got %v", byID[2])
	}
	if byID[2]["carisma"] != "Evangelização" {
		t.Fatalf("expected carisma 2 name Evangelização, got %v", byID[2]["carisma"])
	}
	if byID[1]["total"] != float64(0) {
		t.Fatalf("expected carisma 1 total 0, got %v", byID[1])
	}
}

func TestLevantadosReportFlattensAllLists(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "Admin", "admin@example.com", "SenhaForte1")

	createTestCommunity(t, app, token, fiber.Map{
		"diocese":    "A",
		"paroquia":   "São Pedro",
		"levantados": []fiber.Map{{"nome": "Ana"}, {"nome": "Bruno"}},
	})
	createTestCommunity(t, app, token, fiber.Map{
		"diocese":    "B",
		"paroquia":   "São Paulo",
		"levantados": []fiber.Map{{"nome": "Clara"}},
	})

	response := performJSON(t, app, http.MethodGet, "/api/relatorios/levantados", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var entries []map[string]any
	decodeJSON(t, response, &entries)
	if len(entries) != 3 {
		t.Fatalf("expected 3 flattened entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry["comunidade_id"] == nil || entry["paroquia"] == "" {
			t.Fatalf("expected community annotation on entry, got %v", entry)
		}
		levantado, ok := entry["levantado"].(map[string]any)
		if !ok || levantado["nome"] == nil {
			t.Fatalf("expected candidate record preserved, got %v", entry["levantado"])
		}
	}
}

func TestUnknownReportTipoReturnsEmptyList(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "Admin", "admin@example.com", "SenhaForte1")

	createTestCommunity(t, app, token, fiber.Map{"diocese": "A"})

	response := performJSON(t, app, http.MethodGet, "/api/relatorios/inexistente", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var entries []any
	decodeJSON(t, response, &entries)
	if len(entries) != 0 {
		t.Fatalf("expected empty list for unknown tipo, got %v", entries)
	}
}
