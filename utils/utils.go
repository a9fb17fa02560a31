package utils

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// IsContract reports whether executable code is stored at the address.
func IsContract(ctx context.Context, client bind.ContractCaller, address common.Address) (bool, error) {
	code, err := client.CodeAt(ctx, address, nil)
	if err != nil {
		return false, err
	}

	return len(code) > 0, nil
}
