package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var ERC20ABI, _ = abi.JSON(strings.NewReader(`[{
  "constant": true,
  "name": "balanceOf",
  "type": "function",
  "stateMutability": "view",
  "inputs": [
    {"name": "account", "type": "address"}
  ],
  "outputs": [
    {"name": "", "type": "uint256"}
  ]
}]`))
