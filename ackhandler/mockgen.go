package ackhandler

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -package ackhandler -destination mock_session_notifier_test.go github.com/quictrack/quictrack/ackhandler SessionNotifier"
