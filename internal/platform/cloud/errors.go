package cloud

import (
	"errors"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// IsTransient classifies an error for the retry executor. Locked, conflict
// and rate-limit conditions clear up on their own; not-found and
// invalid-input never do. Anything that is not a recognizable API error
// (network hiccups and the like) is assumed transient, preserving the
// uniform-retry default.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if isHCloudErrorCode(err,
		hcloud.ErrorCodeNotFound,
		hcloud.ErrorCodeInvalidInput,
		hcloud.ErrorCodeUniquenessError,
		hcloud.ErrorCodeForbidden,
		hcloud.ErrorCodeUnauthorized,
	) {
		return false
	}
	return true
}

// isHCloudErrorCode checks if the error is an hcloud API error with one of
// the given codes.
func isHCloudErrorCode(err error, codes ...hcloud.ErrorCode) bool {
	var hcloudErr hcloud.Error
	if !errors.As(err, &hcloudErr) {
		return false
	}
	for _, code := range codes {
		if hcloudErr.Code == code {
			return true
		}
	}
	return false
}
