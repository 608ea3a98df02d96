package req_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"squad_finder/pkg/errcodes"
	"squad_finder/pkg/httpx/req"
)

type testRequest struct {
	Name     string `json:"name"     validate:"required"`
	WeekDays []int  `json:"weekDays" validate:"required,dive,min=0,max=6"`
}

func TestRead(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "Valid", body: `{"name":"Zed","weekDays":[1,3,5]}`},
		{name: "Empty week days", body: `{"name":"Zed","weekDays":[]}`},
		{name: "Broken JSON", body: `{"name":`, wantErr: true},
		{name: "Missing name", body: `{"weekDays":[1]}`, wantErr: true},
		{name: "Missing week days", body: `{"name":"Zed"}`, wantErr: true},
		{name: "Week day out of range", body: `{"name":"Zed","weekDays":[7]}`, wantErr: true},
		{name: "Wrong type", body: `{"name":"Zed","weekDays":"1,2"}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var dest testRequest

			err := req.Read(r, &dest)
			if !tc.wantErr {
				rq.NoError(err)

				return
			}

			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
			rq.Equal(errcodes.ValidationError, failure.Code(err))
		})
	}
}

type nestedRequest struct {
	Schedule struct {
		HourStart string `json:"hourStart" validate:"required"`
	} `json:"schedule"`
	Years *int `json:"yearsPlaying" validate:"required,min=0,max=100"`
}

func TestReadDescription(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		body        string
		dest        any
		description string
	}{
		{
			name:        "Broken JSON",
			body:        `{"name":`,
			dest:        &testRequest{},
			description: "Invalid JSON",
		},
		{
			name:        "Missing field uses json name",
			body:        `{"weekDays":[1]}`,
			dest:        &testRequest{},
			description: "name: required",
		},
		{
			name:        "Element rule with param",
			body:        `{"name":"Zed","weekDays":[1,9]}`,
			dest:        &testRequest{},
			description: "weekDays[1]: max=6",
		},
		{
			name:        "Several errors",
			body:        `{"yearsPlaying":101}`,
			dest:        &nestedRequest{},
			description: "schedule.hourStart: required; yearsPlaying: max=100",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			err := req.Read(r, tc.dest)
			rq.Error(err)
			rq.Equal(tc.description, failure.Description(err))
			rq.NotContains(failure.Description(err), "Request")
		})
	}
}
