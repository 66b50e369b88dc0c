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

package utils

import (
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/models"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/spec"
)

func ConvertToListingItems(listings []models.Listing) []spec.ListingItem {
	if len(listings) == 0 {
		return []spec.ListingItem{}
	}
	items := make([]spec.ListingItem, len(listings))
	for i, listing := range listings {
		items[i] = ConvertToListingItem(listing)
	}
	return items
}

func ConvertToListingItem(listing models.Listing) spec.ListingItem {
	return spec.ListingItem{
		Title:        listing.Title,
		Price:        listing.Price,
		Currency:     listing.Currency,
		Condition:    listing.Condition,
		ItemURL:      listing.ItemURL,
		ImageURL:     listing.ImageURL,
		Seller:       listing.Seller,
		ShippingCost: listing.ShippingCost,
		Location:     listing.Location,
		SoldDate:     listing.SoldDate,
	}
}
