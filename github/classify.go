package github

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/go-github/v61/github"
	"github.com/iabdulin/pr-access-control/gateway"
)

// classifyMergeError converts a failed merge attempt into a
// *gateway.MergeError. The reason comes from the HTTP status code when
// GitHub returned a structured error response, falling back to
// substring sniffing of the message otherwise. wrapped carries the
// human-readable context and becomes the error's cause.
func classifyMergeError(wrapped, cause error) error {
	return &gateway.MergeError{
		Reason: mergeErrorReason(cause),
		Cause:  wrapped,
	}
}

func mergeErrorReason(cause error) gateway.MergeErrorReason {
	var gherr *github.ErrorResponse
	if errors.As(cause, &gherr) && gherr.Response != nil {
		switch gherr.Response.StatusCode {
		case http.StatusForbidden:
			return gateway.MergeFailedPermission
		case http.StatusMethodNotAllowed, http.StatusConflict:
			// 405 is GitHub's "pull request is not mergeable"; 409
			// means the head moved mid-flight.
			return gateway.MergeFailedNotMergeable
		case http.StatusUnprocessableEntity:
			return gateway.MergeFailedRuleBlocked
		}
	}

	msg := strings.ToLower(cause.Error())
	switch {
	case strings.Contains(msg, "not mergeable"):
		return gateway.MergeFailedNotMergeable
	case strings.Contains(msg, "permission"), strings.Contains(msg, "forbidden"):
		return gateway.MergeFailedPermission
	case strings.Contains(msg, "protected branch"), strings.Contains(msg, "rule"):
		return gateway.MergeFailedRuleBlocked
	}
	return gateway.MergeFailedUnknown
}
