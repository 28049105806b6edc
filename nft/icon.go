package nft

// DefaultCollectionIcon is the collection logo as a PNG data URI.
const DefaultCollectionIcon = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAASAAAAEgCAYAAAAUg66AAAAK3UlEQVR42u3d3Y0UuRoG4Jmzc70SKZDBNCCdMIiCCE4YREAUhIEEDBmQAtLej9gLdCSvhLdd7c9/5ee5RDOs+bZkvW+7uur+/afnn3cM8+7Na0MY6MPnL4Yw0H+MALABATYgABsQYAMCsAEBNiAAGxBgAwKwAQE2IIBSDzMs4n///ePqz7z/9Oz/ViN//vHt6s/89fxoUK5/CQiwAQGsW8FKYmfNz6ty9bWr5udVOde/BASoYABDKlhNdPzx9eXVn3nx6nvIes5azWqqU4v559Zz1mrm+peAABUM4J/uWzyUviR2lsTL1o7G1xYxtcVD6Utq14rzb1HTWjyU3vUvAQEqGECHCrZK7IyKplFxNKqCrVK7ouYfVceiKpjrXwICVDCADhVshtiZxsWe/62oOFpTwWaoXTPMv6aO1VQw13/99S8BASoYsJ8m3wVrEQWP3jTV+t+VrieN4jN8p2y3+adVdIbvlLn+JSBABQMIrGC5T/5n+27LKjd9HZU7+TL/Plz/EhCgggF0rmCjImXq293b3/75493HbnF0lROx3eY/24mY618CAlQwgIUqWEnszP1Mzzi6A/M3fwkIUMEATlPBZviey87M3/wlIMAGBLBVBcsp+eS/5HedyJi/+c85fwkIsAEBKlg3JZ/8p9Gx9Rp2qwPmb/4zzF8CAlQwQAUTpysj9KhHcJj/L6MewWH+t13/EhCgggEq2FVpxCp5NW2Om9Buk1aMklczm38s178EBNiAADpXsJI4mvuEfPXYOdtjE3J1zPzH1jHzl4AAFQygUQUriaOrK4mdM7z/K+p0bMX5z/D+L9e/BASoYACdK1hUnBt1UlDzCf8qr2M+6/xXeR2z618CAlQwgMAKlvvk/+np6ervXi6Xm6NgGllb3CiVW3+65hnkTr7Mvw/XvwQEqGAAZe7ff3r+OTqCzhCtj66zZM0lJwLv3rweXsHOOv+SE7EPn7/cuf7HXf8SEKCCAfupOgWLip0lom7wO9P3dKJqV4moG/zO9D01178EBKhgAMcdPgVrHTtrPlFvEUejTjFy6z96Cta6dtWcKLWoY1Hzz63/6CmY6z92/RIQoIIB+3mYYRE9Y2fu7685HRi1/tbzb/1oi6inOI5av+u/fv0SEKCCASpYeAxLpZ+oz/Y4hVwcTdc58/pXn3+ujpn/ua9/CQhQwYD9VD2OI/cw6ppP1Gc4Oeq5/prHceQexl5zojTDyVHP9dc8jsP1X79+CQhQwQAVbHjMm+3mvZI4WrPmqCciRtWc2W7eK6ljNWuOeiKi618CAlQwgMkrGGMrGGMrGBIQYAMCbEAANiDABgRgAwJsQAA2IMAGBGADAmxAADYgwAYEYAMCbEAANiDABgRs72GGRbR+8DX/rvWD33H9S0CADQhgeAU7+vrXmtfFqnK31a6an1flXP8SEKCCAQypYDXR8cfXl1d/5sWr7yHrOWs1q6lOLea/yiuhXf8SEKCCAbTR5NXMJbGzJF62djS+toipLV7NXFK7Vpx/i5rW4tXMrn8JCFDBADpUsFViZ1Q0jYqjURVsldoVNf+oOhZVwVz/EhCgggF0qGAzxM40Lvb8b0XF0ZoKNkPtmmH+NXWspoK5/uuvfwkIUMGA/TT5LliLKHj0pqnW/650PWkUn+E7ZbvNP62iM3ynzPUvAQEqGEBgBct98j/bd1tWuenrqNzJl/n34fqXgAAVDKBzBRsVKVPf7t7+9s8f7z52i6OrnIjtNv/ZTsRc/xIQoIIBLFTBSmJn7md6xtEdmL/5S0CACgZwmgo2w/dcdmb+5i8BATYggK0qWE7JJ/8lv+tExvzNf875S0CADQhQwbop+eQ/jY6t17BbHTB/859h/hIQoIIBKpg4XRmhRz2Cw/x/GfUIDvO/7fqXgAAVDFDBrkojVsmraXPchHabtGKUvJrZ/GO5/iUgwAYE0LmClcTR3Cfkq8fO2R6bkKtj5j+2jpm/BASoYACNKlhJHF1dSeyc4f1fUadjK85/hvd/uf4lIEAFA+hcwaLi3KiTgppP+Fd5HfNZ57/K65hd/xIQoIIBBFaw3Cf/T09PV3/3crncHAXTyNriRqnc+tM1zyB38mX+fbj+JSBABQMoc//+0/PP0RF0hmh9dJ0lay45EXj35vXwCnbW+ZeciH34/OXO9T/u+peAABUM2E/VKVhU7CwRdYPfmb6nE1W7SkTd4Hem76m5/iUgQAUDOO7wKVjr2FnziXqLOBp1ipFb/9FTsNa1q+ZEqUUdi5p/bv1HT8Fc/7Hrl4AAFQzYz8MMi+gZO3N/f83pwKj1t55/60dbRD3FcdT6Xf/165eAABUMUMHCY1gq/UR9tscp5OJous6Z17/6/HN1zPzPff1LQIAKBuyn6nEcuYdR13yiPsPJUc/11zyOI/cw9poTpRlOjnquv+ZxHK7/+vVLQIAKBqhgw2PebDfvlcTRmjVHPRExqubMdvNeSR2rWXPUExFd/xIQoIIBTF7BGFvBGFvBkIAAGxBgAwKwAQE2IIDG7v96fnQKNpBTGCQgABsQYAMCsAEBNiAAGxBgAwKwAQE2IAAbEGADAijwMMMiWj94nH/X+sHjmL8EBNiAAP5v2OM4al6/W2O2Kjfbe6laU+XMXwICbECACta0gtVUrR9fX179mRevvi9dzVpXsJqo33P+Z61m5i8BASoYQIcKVlK7SuJla0fja4ua1qKClcT+Fee/Sk0zfwkIUMEAOlSwVWpXVDSNqmNRFWyV2B81/9nqmPlLQIAKBtChgs1Qu9K42PO/FVXHairYDLF/hvmPqmPmXz9/CQhQwYD9NHkiYosoGPWdl6h/V7qetIrO8LiP3eafVqEZTsfMXwICVDCAwAqWO/ma7bstq9z0dVTu5MX8zX/F+UtAgA0I2M/hGxF7VrDcJ//f7t7+9s8f7z4Oicc1NygevRGxZwVYff4tTsTMP3b+EhCgggH7eVhlobnYmfuZNI7ucDpj/ua/4vwlIMAGBKhgQ8zwPZedmb/5S0CADQhgqwqWU/LJf8nvOpExf/Ofc/4SEGADAlSwbko++c99t6XFGnarA+Zv/jPMXwICVDBABROnKyP0qIfSm/8vox5Kb/63zV8CAlQwQAW7Kq0YJa9mznET2m3SiFvyamDzN38JCMAGBMzk8EPpc0rq2Oqxs+TmsaOnYEcfSp9TUgd2mP+oUzDzv23+EhCgggH7CbsRMep0bIfa1ULU6YzaZf495y8BASoYsJ+wU7DUijcoRj0YfNQpWGrFG+Si5j9DHTN/CQhQwQDywk7BcrXr6enp6u9eLpebo2AaWVu8Xym3/nTNM8jFfvM3/5nnLwEBKhiwn+bfBSuJoDNE66PrLFlzyYlY6++C7Tz/nidi5n/b/CUgQAUD9lN1ChZVu0pEfd/qTN9Ti4r9JaLqzJm+J2X+EhCgggEcd/gUrHXtqjlRalHHok4xcus/egrWOvb3PFEqqQNR829dYcz/tvVLQIAKBuznYYZF9Kxdub+/5nRs1Ppbz7/1jXxRTxGc4UZE879t/RIQoIIBKlh4DEuln6jP9jiFXB1L1znz+leff64OmP+55y8BASoYsJ+qx3GkVSXqRGmGk6Oe6695HEcalaNONFZ/qPuoR3CY/23rl4AAFQxQwYbXnNlu3iupYzVrbvFesJqYPdvNeyV1YJUbDs1fAgJUMICBFYyxFQwkIMAGBGADAmxAADYg4NT+BiLfHMRZalF3AAAAAElFTkSuQmCC"
