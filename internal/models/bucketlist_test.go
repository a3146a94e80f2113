package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointStatus(t *testing.T) {
	require.Equal(t, StatusDone, PointStatus(true))
	require.Equal(t, StatusPending, PointStatus(false))
}

func TestProgressColor(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     string
	}{
		{"all done", []string{StatusDone, StatusDone}, ProgressComplete},
		{"some done", []string{StatusDone, StatusPending}, ProgressInProgress},
		{"none done", []string{StatusPending, StatusPending}, ProgressNone},
		{"no points", nil, ProgressNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BucketListView{}
			for _, s := range tt.statuses {
				view.Points = append(view.Points, BucketListPoint{Status: s})
			}
			require.Equal(t, tt.want, view.ProgressColor())
		})
	}
}

func TestDoneCount(t *testing.T) {
	view := BucketListView{Points: []BucketListPoint{
		{Status: StatusDone},
		{Status: StatusPending},
		{Status: StatusDone},
	}}
	require.Equal(t, 2, view.DoneCount())
}
