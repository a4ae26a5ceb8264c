package rhinestone

type BundleData struct {
	Expires string `json:"expires"`
}

type ChainExecution struct {
	To      string `json:"to"`
	Data    string `json:"data"`
	Value   string `json:"value"`
	ChainID uint64 `json:"chainId"`
}

type BundleEvent struct {
	BundleId            string               `json:"bundleId"`
	AcrossDepositEvents []AcrossDepositEvent `json:"acrossDepositEvents"`
}

type AcrossDepositEvent struct {
	Message             string         `json:"message"`
	DepositId           string         `json:"depositId"`
	Depositor           string         `json:"depositor"`
	Recipient           string         `json:"recipient"`
	InputToken          string         `json:"inputToken"`
	InputAmount         string         `json:"inputAmount"`
	OutputToken         string         `json:"outputToken"`
	FillDeadline        string         `json:"fillDeadline"`
	OutputAmount        string         `json:"outputAmount"`
	QuoteTimestamp      uint64         `json:"quoteTimestamp"`
	ExclusiveRelayer    string         `json:"exclusiveRelayer"`
	DestinationChainId  uint64         `json:"destinationChainId"`
	ExclusivityDeadline string         `json:"exclusivityDeadline"`
	OriginClaimPayload  ChainExecution `json:"originClaimPayload"`
}

// Fill is the target chain transaction that executed the bundle
type Fill struct {
	TransactionHash string `json:"transactionHash"`
	Timestamp       uint64 `json:"timestamp"`
	Confirmations   uint64 `json:"confirmations"`
}

type Claim struct {
	DepositId       string `json:"depositId"`
	ChainId         uint64 `json:"chainId"`
	TransactionHash string `json:"transactionHash"`
	Timestamp       uint64 `json:"timestamp"`
}

type Bundle struct {
	TargetChainId uint64      `json:"targetChainId"`
	BundleData    BundleData  `json:"bundleData"`
	BundleEvent   BundleEvent `json:"bundleEvent"`
	Fill          *Fill       `json:"fill"`
	Claims        []Claim     `json:"claims"`
}
