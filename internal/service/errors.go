package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/sheetledger/internal/ledger"
)

var errInternal = errors.New("internal error")

// toConnectError maps a ledger error onto a connect status. Business-rule
// failures keep their reason and are logged at Warn; anything else is
// logged at Error and returned without detail.
func toConnectError(logger *slog.Logger, op string, err error) error {
	kind := ledger.KindOf(err)
	if kind == ledger.KindInternal {
		logger.Error(op+" failed", "error", err)
		return connect.NewError(connect.CodeInternal, errInternal)
	}

	logger.Warn(op+" rejected", "kind", kind.String(), "error", err)
	return connect.NewError(codeFor(kind), err)
}

func codeFor(kind ledger.Kind) connect.Code {
	switch kind {
	case ledger.KindNotFound:
		return connect.CodeNotFound
	case ledger.KindDuplicate:
		return connect.CodeAlreadyExists
	case ledger.KindConflict:
		return connect.CodeAborted
	case ledger.KindInvalidArgument:
		return connect.CodeInvalidArgument
	case ledger.KindUnauthenticated:
		return connect.CodeUnauthenticated
	default:
		return connect.CodeInternal
	}
}
