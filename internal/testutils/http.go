package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonContentType = "application/json; charset=utf-8"

// HTTPTestSuite serves requests against a bare gin router in test mode
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest creates a router without the production middleware
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest sends body as JSON when it is not nil
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders sends body as JSON with extra headers, such as Authorization
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return suite.serve(req, headers)
}

// MultipartFile is the file part of a multipart request
type MultipartFile struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// MakeMultipartRequest sends fields and an optional file as multipart/form-data
func (suite *HTTPTestSuite) MakeMultipartRequest(method, url string, fields map[string]string, file *MultipartFile, headers map[string]string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		_ = writer.WriteField(key, value)
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+file.Field+`"; filename="`+file.Filename+`"`)
		h.Set("Content-Type", file.ContentType)
		part, _ := writer.CreatePart(h)
		_, _ = part.Write(file.Data)
	}
	_ = writer.Close()

	req := httptest.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return suite.serve(req, headers)
}

func (suite *HTTPTestSuite) serve(req *http.Request, headers map[string]string) *httptest.ResponseRecorder {
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse checks status and content type, then decodes the body into target
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	AssertSuccessResponse(t, recorder, expectedStatus)
	if target != nil {
		ParseJSONResponse(t, recorder, target)
	}
}

// AssertErrorResponse checks status and that the envelope's error contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var envelope map[string]interface{}
	ParseJSONResponse(t, recorder, &envelope)
	assert.Equal(t, false, envelope["success"])
	if expectedMessage != "" {
		assert.Contains(t, envelope["error"], expectedMessage)
	}
}

// AssertSuccessResponse checks status and the JSON content type
func AssertSuccessResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int) {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, jsonContentType, recorder.Header().Get("Content-Type"))
}

// ParseJSONResponse decodes the body into target
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}

// MockHTTPRequest is the request half of an HTTPTestCase
type MockHTTPRequest struct {
	Method  string
	URL     string
	Body    interface{}
	Headers map[string]string
}

// MockHTTPResponse is the expected status and, when set, the exact JSON body
type MockHTTPResponse struct {
	Status int
	Body   interface{}
}

// HTTPTestCase is one row of a RunHTTPTestCases table
type HTTPTestCase struct {
	Name             string
	Request          MockHTTPRequest
	ExpectedResponse MockHTTPResponse
}

// RunHTTPTestCases runs each case as a subtest
func (suite *HTTPTestSuite) RunHTTPTestCases(t *testing.T, testCases []HTTPTestCase) {
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			recorder := suite.MakeRequestWithHeaders(tc.Request.Method, tc.Request.URL, tc.Request.Body, tc.Request.Headers)

			assert.Equal(t, tc.ExpectedResponse.Status, recorder.Code)
			if tc.ExpectedResponse.Body != nil {
				expected, err := json.Marshal(tc.ExpectedResponse.Body)
				require.NoError(t, err)
				assert.JSONEq(t, string(expected), recorder.Body.String())
			}
		})
	}
}
