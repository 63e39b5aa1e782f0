package sales

// LatestSalesQuery selects the newest sales, $first at most.
const LatestSalesQuery = `query LatestSales($first: Int!) {
  nftsales(first: $first, orderBy: timestamp, orderDirection: desc) {
    id
    collection
    tokenId
    price
    paymentToken
    timestamp
    txHash
  }
}`

// salesResponse is the "data" object returned for LatestSalesQuery.
type salesResponse struct {
	NFTSales []rawSale `json:"nftsales"`
}

// rawSale is one nftsales entity as serialized by the subgraph.
// BigInt and Bytes scalars arrive as strings; numbers are tolerated.
type rawSale struct {
	ID           scalar `json:"id"`
	Collection   scalar `json:"collection"`
	TokenID      scalar `json:"tokenId"`
	Price        scalar `json:"price"`
	PaymentToken scalar `json:"paymentToken"`
	Timestamp    scalar `json:"timestamp"`
	TxHash       scalar `json:"txHash"`
}
