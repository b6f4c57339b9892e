package platform

import (
	"errors"
	"testing"
)

func TestInboxEmptyTake(t *testing.T) {
	var in Inbox
	if _, ok := in.Take(); ok {
		t.Fatal("empty inbox should have nothing to take")
	}
}

func TestInboxDepositTake(t *testing.T) {
	var in Inbox
	in.Deposit(LoadResult{Path: "a.csv", Rows: [][]string{{"x"}}})
	res, ok := in.Take()
	if !ok || res.Path != "a.csv" || res.Rows[0][0] != "x" {
		t.Fatalf("unexpected result: %+v ok=%v", res, ok)
	}
	if _, ok := in.Take(); ok {
		t.Fatal("take should drain the slot")
	}
}

func TestInboxDepositOverwrites(t *testing.T) {
	var in Inbox
	in.Deposit(LoadResult{Path: "old.csv"})
	in.Deposit(LoadResult{Path: "new.csv", Err: errors.New("boom")})
	res, ok := in.Take()
	if !ok || res.Path != "new.csv" || res.Err == nil {
		t.Fatalf("second deposit should win: %+v", res)
	}
}
