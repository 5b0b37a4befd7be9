// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package activity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_UnmarshalText(t *testing.T) {
	for _, valid := range Types() {
		var got Type
		require.NoError(t, got.UnmarshalText([]byte(valid)))
		assert.Equal(t, valid, got)
	}

	var got Type
	err := got.UnmarshalText([]byte("harvest"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "harvest")
}

func TestStatusColor_UnmarshalText(t *testing.T) {
	for _, valid := range StatusColors() {
		var got StatusColor
		require.NoError(t, got.UnmarshalText([]byte(valid)))
		assert.Equal(t, valid, got)
	}

	var got StatusColor
	assert.Error(t, got.UnmarshalText([]byte("purple")))
}

func TestItem_DecodeRejectsUnknownEnums(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "valid item",
			payload: `{"id":1,"type":"scan","title":"t","time":"now","status":"ok","status_color":"green"}`,
		},
		{
			name:    "unknown type",
			payload: `{"id":1,"type":"mystery","title":"t","time":"now","status":"ok","status_color":"green"}`,
			wantErr: true,
		},
		{
			name:    "unknown color",
			payload: `{"id":1,"type":"alert","title":"t","time":"now","status":"ok","status_color":"magenta"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item Item
			err := json.Unmarshal([]byte(tt.payload), &item)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, item.Validate())
		})
	}
}

func TestItem_Validate(t *testing.T) {
	item := Item{ID: 7, Type: TypeScan, StatusColor: StatusBlue}
	assert.NoError(t, item.Validate())

	item.Type = "garden"
	assert.Error(t, item.Validate())

	item.Type = TypeScan
	item.StatusColor = "pink"
	assert.Error(t, item.Validate())
}

func TestDefaultFeed(t *testing.T) {
	feed := DefaultFeed()

	require.NoError(t, ValidateFeed(feed))
	require.Len(t, feed, 3)

	// Feed order is display order.
	assert.Equal(t, TypeScan, feed[0].Type)
	assert.Equal(t, TypeAchievement, feed[1].Type)
	assert.Equal(t, TypeAlert, feed[2].Type)

	seen := map[int]bool{}
	for _, item := range feed {
		assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
		seen[item.ID] = true
	}
}
