// Package service contains the application use cases that sit between the
// HTTP layer and the stores. It depends on the store interfaces only, never
// on a specific database implementation.
//
// ProfileService assembles the traveler profile page. It never fails: any
// read problem is logged and answered with domain.FallbackProfile.
package service
