package handlers_test

import (
	"net/http/httptest"

	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/testutils"

	"github.com/google/uuid"
)

const testTimestamp = "2024-06-01T10:00:00Z"

// newTestRouter returns an HTTP test suite whose requests are made as caller.
// A nil caller leaves requests unauthenticated.
func newTestRouter(caller *auth.Caller) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	if caller != nil {
		httpSuite.AsCaller(*caller)
	}
	return httpSuite
}

func ownerCaller() *auth.Caller {
	caller := auth.StudioCaller(uuid.New())
	return &caller
}

func invalidJSONRequest(httpSuite *testutils.HTTPTestSuite, method, url string) *httptest.ResponseRecorder {
	return httpSuite.MakeRawRequest(method, url, "invalid json")
}
