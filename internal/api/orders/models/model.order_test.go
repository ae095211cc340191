package models

import "testing"

func TestValidStatus(t *testing.T) {
	valid := []string{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}
	for _, status := range valid {
		if !ValidStatus(status) {
			t.Errorf("Trạng thái %q phải hợp lệ", status)
		}
	}

	invalid := []string{"", "done", "PENDING", "shipped"}
	for _, status := range invalid {
		if ValidStatus(status) {
			t.Errorf("Trạng thái %q phải bị từ chối", status)
		}
	}
}
