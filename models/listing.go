// Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package models

// Listing is the normalized shape of one marketplace item, flattened from the
// nested structures the upstream search APIs return.
type Listing struct {
	Title        string
	Price        string
	Currency     string
	Condition    string
	ItemURL      string
	ImageURL     string
	Seller       string
	ShippingCost string
	Location     string

	// SoldDate is set only for completed-listing results
	SoldDate string
}
